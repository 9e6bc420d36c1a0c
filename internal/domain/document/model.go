package document

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orderdocs/orderdocs/internal/domain/order"
	"github.com/orderdocs/orderdocs/internal/types"
)

// Snapshot is the normalized, generator-agnostic view of an order built per
// generation call. It is owned by the orchestrator for the duration of one
// request and never shared across calls.
type Snapshot struct {
	OrderID      int
	OrderNumber  string
	OrderDate    time.Time
	Status       string
	Total        decimal.Decimal
	Currency     string
	Billing      order.Address
	Shipping     order.Address
	Items        []LineItem
	CustomerNote string
}

// LineItem carries the per-line figures renderers need. UnitPrice is derived
// as Total / max(Quantity, 1); Quantity itself is kept as stored.
type LineItem struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// GeneratedDocument records one successful render+store. It is created by
// the orchestrator and never updated.
type GeneratedDocument struct {
	Kind      types.DocumentKind
	OrderID   int
	FilePath  string
	CreatedAt time.Time
}
