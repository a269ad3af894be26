package partner

import (
	"context"
)

// Store defines the interface for partner persistence operations.
type Store interface {
	List(ctx context.Context) ([]*Partner, error)
	Create(ctx context.Context, partner *Partner) error
	Delete(ctx context.Context, id uint) error
}
