package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/orderdocs/orderdocs/internal/domain/document"
	"github.com/orderdocs/orderdocs/internal/domain/order"
	"github.com/orderdocs/orderdocs/internal/logger"
)

// SnapshotService normalizes raw order records into the generator-agnostic
// snapshot the renderers consume.
type SnapshotService interface {
	GetOrderSnapshot(ctx context.Context, orderID int) (*document.Snapshot, error)
}

type snapshotService struct {
	orderRepo order.Repository
	logger    *logger.Logger
}

func NewSnapshotService(orderRepo order.Repository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

func (s *snapshotService) GetOrderSnapshot(ctx context.Context, orderID int) (*document.Snapshot, error) {
	o, err := s.orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items := make([]document.LineItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, document.LineItem{
			Name:      item.Name,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice(item),
			Total:     item.Total,
		})
	}

	return &document.Snapshot{
		OrderID:      o.ID,
		OrderNumber:  o.Number,
		OrderDate:    o.Date,
		Status:       o.Status,
		Total:        o.Total,
		Currency:     o.Currency,
		Billing:      o.Billing,
		Shipping:     o.Shipping,
		Items:        items,
		CustomerNote: o.CustomerNote,
	}, nil
}

// unitPrice derives the per-unit price from the line total. Quantity is
// clamped to 1 for the division only; zero-quantity lines keep their stored
// quantity in the snapshot.
func unitPrice(item order.Item) decimal.Decimal {
	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}
	return item.Total.Div(decimal.NewFromInt(int64(qty)))
}
