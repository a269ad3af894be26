package project

import (
	"context"
)

// Store defines the interface for project persistence operations.
type Store interface {
	// List returns every project in insertion order.
	List(ctx context.Context) ([]*Project, error)

	// GetByID retrieves a project by its ID.
	GetByID(ctx context.Context, id uint) (*Project, error)

	// Create inserts the project and fills in its ID and CreatedAt.
	Create(ctx context.Context, project *Project) error

	// Update applies the setters to an existing project and returns the stored result.
	Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Project, error)

	// Delete permanently removes a project.
	Delete(ctx context.Context, id uint) error
}

// UpdateSetter is a function that updates a project field.
type UpdateSetter func(*Project) error
