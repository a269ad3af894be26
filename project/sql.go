package project

import (
	"context"
	"errors"
	"time"

	"github.com/hairizuan-noorazman/showcase/logger"
	"gorm.io/gorm"
)

// updatableColumns are written by Update; id and created_at never change.
var updatableColumns = []string{"title", "description", "image", "category"}

// SQLStore implements the Store interface using GORM.
type SQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLStore creates a new GORM-backed project store.
func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

// List returns every project ordered by ID.
func (s *SQLStore) List(ctx context.Context) ([]*Project, error) {
	projects := []*Project{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&projects).Error; err != nil {
		s.logger.Error(ctx, "failed to list projects", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return projects, nil
}

// GetByID retrieves a project by its ID.
func (s *SQLStore) GetByID(ctx context.Context, id uint) (*Project, error) {
	var project Project
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error(ctx, "failed to get project by ID", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id,
		})
		return nil, err
	}
	return &project, nil
}

// Create creates a new project. ID and CreatedAt are always assigned here,
// whatever the caller put in them.
func (s *SQLStore) Create(ctx context.Context, project *Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	project.ID = 0
	project.CreatedAt = time.Time{}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		s.logger.Error(ctx, "failed to create project", map[string]interface{}{
			"error": err.Error(),
			"title": project.Title,
		})
		return err
	}

	s.logger.Info(ctx, "project created", map[string]interface{}{
		"project_id": project.ID,
		"title":      project.Title,
	})
	return nil
}

// Update applies the setters to the stored project. Fields without a setter keep their value.
func (s *SQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, setter := range setters {
		if err := setter(project); err != nil {
			return nil, err
		}
	}

	// Updates never inserts, so a row deleted since the read stays deleted.
	result := s.db.WithContext(ctx).Model(project).Select(updatableColumns).Updates(project)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to update project", map[string]interface{}{
			"error":      result.Error.Error(),
			"project_id": id,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}

	s.logger.Info(ctx, "project updated", map[string]interface{}{
		"project_id": id,
	})
	return project, nil
}

// Delete removes a project. Deleting an unknown ID reports ErrProjectNotFound.
func (s *SQLStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Project{}, id)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete project", map[string]interface{}{
			"error":      result.Error.Error(),
			"project_id": id,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Info(ctx, "project deleted", map[string]interface{}{
		"project_id": id,
	})
	return nil
}
