package article

import (
	"context"
)

// Store defines the interface for article persistence operations.
type Store interface {
	List(ctx context.Context) ([]*Article, error)
	GetByID(ctx context.Context, id uint) (*Article, error)
	Create(ctx context.Context, article *Article) error
	Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Article, error)
	Delete(ctx context.Context, id uint) error
}

// UpdateSetter is a function that updates an article field.
type UpdateSetter func(*Article) error
