package service

import (
	"context"
	"errors"
	"time"

	"github.com/hairizuan-noorazman/showcase/logger"
	"gorm.io/gorm"
)

// updatableColumns are written by Update; id and created_at never change.
var updatableColumns = []string{"title", "description", "image", "icon"}

// SQLStore implements the Store interface using GORM.
type SQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLStore creates a new GORM-backed service store.
func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

// List returns every service ordered by ID.
func (s *SQLStore) List(ctx context.Context) ([]*Service, error) {
	services := []*Service{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&services).Error; err != nil {
		s.logger.Error(ctx, "failed to list services", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return services, nil
}

// GetByID retrieves a service by its ID.
func (s *SQLStore) GetByID(ctx context.Context, id uint) (*Service, error) {
	var svc Service
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&svc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error(ctx, "failed to get service by ID", map[string]interface{}{
			"error":      err.Error(),
			"service_id": id,
		})
		return nil, err
	}
	return &svc, nil
}

// Create creates a new service with a server-assigned ID and CreatedAt.
func (s *SQLStore) Create(ctx context.Context, svc *Service) error {
	if err := svc.Validate(); err != nil {
		return err
	}

	svc.ID = 0
	svc.CreatedAt = time.Time{}

	if err := s.db.WithContext(ctx).Create(svc).Error; err != nil {
		s.logger.Error(ctx, "failed to create service", map[string]interface{}{
			"error": err.Error(),
			"title": svc.Title,
		})
		return err
	}

	s.logger.Info(ctx, "service created", map[string]interface{}{
		"service_id": svc.ID,
		"title":      svc.Title,
	})
	return nil
}

// Update applies the setters to the stored service.
func (s *SQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Service, error) {
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, setter := range setters {
		if err := setter(svc); err != nil {
			return nil, err
		}
	}

	// Updates never inserts, so a row deleted since the read stays deleted.
	result := s.db.WithContext(ctx).Model(svc).Select(updatableColumns).Updates(svc)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to update service", map[string]interface{}{
			"error":      result.Error.Error(),
			"service_id": id,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrServiceNotFound
	}

	s.logger.Info(ctx, "service updated", map[string]interface{}{
		"service_id": id,
	})
	return svc, nil
}

// Delete removes a service. Deleting an unknown ID reports ErrServiceNotFound.
func (s *SQLStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Service{}, id)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete service", map[string]interface{}{
			"error":      result.Error.Error(),
			"service_id": id,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrServiceNotFound
	}

	s.logger.Info(ctx, "service deleted", map[string]interface{}{
		"service_id": id,
	})
	return nil
}
