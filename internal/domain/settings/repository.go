package settings

import "context"

// Repository reads the persisted settings. Get is called fresh on every
// generation so operator changes take effect without a restart; writes go
// through the admin settings surface, never through generators.
type Repository interface {
	Get(ctx context.Context) (*Settings, error)
}
