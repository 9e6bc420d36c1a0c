package order

import "context"

// Repository is the read-only view of the external order source.
type Repository interface {
	Get(ctx context.Context, id int) (*Order, error)
}
