package testutil

import (
	"context"
	"sync"

	"github.com/orderdocs/orderdocs/internal/domain/order"
	ierr "github.com/orderdocs/orderdocs/internal/errors"
)

// InMemoryOrderStore is an in-memory implementation of order.Repository for
// tests.
type InMemoryOrderStore struct {
	mu     sync.RWMutex
	orders map[int]*order.Order
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		orders: make(map[int]*order.Order),
	}
}

func (s *InMemoryOrderStore) Add(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id int) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, ierr.NewErrorf("order %d not found", id).
			WithHint("Order not found").
			Mark(ierr.ErrNotFound)
	}

	copied := *o
	return &copied, nil
}

func (s *InMemoryOrderStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = make(map[int]*order.Order)
}
