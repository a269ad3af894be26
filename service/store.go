package service

import (
	"context"
)

// Store defines the interface for service persistence operations.
type Store interface {
	List(ctx context.Context) ([]*Service, error)
	GetByID(ctx context.Context, id uint) (*Service, error)
	Create(ctx context.Context, service *Service) error
	Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Service, error)
	Delete(ctx context.Context, id uint) error
}

// UpdateSetter is a function that updates a service field.
type UpdateSetter func(*Service) error
