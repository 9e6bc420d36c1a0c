package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/orderdocs/orderdocs/internal/domain/order"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
	"github.com/orderdocs/orderdocs/internal/logger"
)

type orderRepository struct {
	db     *sqlx.DB
	logger *logger.Logger
}

// NewOrderRepository returns the Postgres-backed read-only view of the
// order source.
func NewOrderRepository(db *sqlx.DB, logger *logger.Logger) order.Repository {
	return &orderRepository{db: db, logger: logger}
}

type orderRow struct {
	ID           int             `db:"id"`
	Number       string          `db:"number"`
	CreatedAt    time.Time       `db:"created_at"`
	Status       string          `db:"status"`
	Total        decimal.Decimal `db:"total"`
	Currency     string          `db:"currency"`
	CustomerNote sql.NullString  `db:"customer_note"`

	BillingFirstName sql.NullString `db:"billing_first_name"`
	BillingLastName  sql.NullString `db:"billing_last_name"`
	BillingCompany   sql.NullString `db:"billing_company"`
	BillingAddress1  sql.NullString `db:"billing_address_1"`
	BillingAddress2  sql.NullString `db:"billing_address_2"`
	BillingCity      sql.NullString `db:"billing_city"`
	BillingState     sql.NullString `db:"billing_state"`
	BillingPostcode  sql.NullString `db:"billing_postcode"`
	BillingCountry   sql.NullString `db:"billing_country"`
	BillingEmail     sql.NullString `db:"billing_email"`
	BillingPhone     sql.NullString `db:"billing_phone"`

	ShippingFirstName sql.NullString `db:"shipping_first_name"`
	ShippingLastName  sql.NullString `db:"shipping_last_name"`
	ShippingCompany   sql.NullString `db:"shipping_company"`
	ShippingAddress1  sql.NullString `db:"shipping_address_1"`
	ShippingAddress2  sql.NullString `db:"shipping_address_2"`
	ShippingCity      sql.NullString `db:"shipping_city"`
	ShippingState     sql.NullString `db:"shipping_state"`
	ShippingPostcode  sql.NullString `db:"shipping_postcode"`
	ShippingCountry   sql.NullString `db:"shipping_country"`
}

type orderItemRow struct {
	Name     string          `db:"name"`
	SKU      sql.NullString  `db:"sku"`
	Quantity int             `db:"quantity"`
	Total    decimal.Decimal `db:"total"`
}

const orderQuery = `
SELECT id, number, created_at, status, total, currency, customer_note,
       billing_first_name, billing_last_name, billing_company,
       billing_address_1, billing_address_2, billing_city, billing_state,
       billing_postcode, billing_country, billing_email, billing_phone,
       shipping_first_name, shipping_last_name, shipping_company,
       shipping_address_1, shipping_address_2, shipping_city, shipping_state,
       shipping_postcode, shipping_country
FROM orders
WHERE id = $1`

const orderItemsQuery = `
SELECT name, sku, quantity, total
FROM order_items
WHERE order_id = $1
ORDER BY position, id`

func (r *orderRepository) Get(ctx context.Context, id int) (*order.Order, error) {
	var row orderRow
	if err := r.db.GetContext(ctx, &row, orderQuery, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, ierr.NewErrorf("order %d not found", id).
				WithHint("Order not found").
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to load order").
			Mark(ierr.ErrDatabase)
	}

	var itemRows []orderItemRow
	if err := r.db.SelectContext(ctx, &itemRows, orderItemsQuery, id); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to load order items").
			Mark(ierr.ErrDatabase)
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, item := range itemRows {
		items = append(items, order.Item{
			Name:     item.Name,
			SKU:      item.SKU.String,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}

	return &order.Order{
		ID:           row.ID,
		Number:       row.Number,
		Date:         row.CreatedAt,
		Status:       row.Status,
		Total:        row.Total,
		Currency:     row.Currency,
		CustomerNote: row.CustomerNote.String,
		Billing: order.Address{
			FirstName: row.BillingFirstName.String,
			LastName:  row.BillingLastName.String,
			Company:   row.BillingCompany.String,
			Address1:  row.BillingAddress1.String,
			Address2:  row.BillingAddress2.String,
			City:      row.BillingCity.String,
			State:     row.BillingState.String,
			Postcode:  row.BillingPostcode.String,
			Country:   row.BillingCountry.String,
			Email:     row.BillingEmail.String,
			Phone:     row.BillingPhone.String,
		},
		Shipping: order.Address{
			FirstName: row.ShippingFirstName.String,
			LastName:  row.ShippingLastName.String,
			Company:   row.ShippingCompany.String,
			Address1:  row.ShippingAddress1.String,
			Address2:  row.ShippingAddress2.String,
			City:      row.ShippingCity.String,
			State:     row.ShippingState.String,
			Postcode:  row.ShippingPostcode.String,
			Country:   row.ShippingCountry.String,
		},
		Items: items,
	}, nil
}
