package review

import (
	"context"
)

// Store defines the interface for review persistence operations.
// There is no single-item read or update for reviews.
type Store interface {
	List(ctx context.Context) ([]*Review, error)
	Create(ctx context.Context, review *Review) error
	Delete(ctx context.Context, id uint) error
}
