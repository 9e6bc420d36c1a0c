package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Order is the raw order record as read from the order source. Generators
// never mutate it; each generation call reads a fresh copy.
type Order struct {
	ID           int
	Number       string
	Date         time.Time
	Status       string
	Total        decimal.Decimal
	Currency     string
	Billing      Address
	Shipping     Address
	Items        []Item
	CustomerNote string
}

// Address holds one side of the order's billing or shipping information.
// Every field is optional; absent fields render as empty.
type Address struct {
	FirstName string
	LastName  string
	Company   string
	Address1  string
	Address2  string
	City      string
	State     string
	Postcode  string
	Country   string
	Email     string
	Phone     string
}

// FullName joins first and last name, trimming when either is empty.
func (a Address) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// CityLine formats "City, State Postcode" the way address blocks expect,
// returning "" when all three parts are empty.
func (a Address) CityLine() string {
	line := strings.TrimSpace(a.City + ", " + a.State + " " + a.Postcode)
	if line == "" || line == "," {
		return ""
	}
	return line
}

// Item is a single order line as stored. Quantity may legitimately be zero
// for fully refunded lines.
type Item struct {
	Name     string
	SKU      string
	Quantity int
	Total    decimal.Decimal
}
