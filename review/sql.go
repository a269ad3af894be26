package review

import (
	"context"

	"github.com/hairizuan-noorazman/showcase/logger"
	"gorm.io/gorm"
)

// SQLStore implements the Store interface using GORM.
type SQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLStore creates a new GORM-backed review store.
func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

func (s *SQLStore) List(ctx context.Context) ([]*Review, error) {
	reviews := []*Review{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&reviews).Error; err != nil {
		s.logger.Error(ctx, "failed to list reviews", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return reviews, nil
}

func (s *SQLStore) Create(ctx context.Context, review *Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	review.ID = 0
	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		s.logger.Error(ctx, "failed to create review", map[string]interface{}{
			"error":         err.Error(),
			"customer_name": review.CustomerName,
		})
		return err
	}

	s.logger.Info(ctx, "review created", map[string]interface{}{
		"review_id": review.ID,
		"rating":    review.Rating,
	})
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Review{}, id)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete review", map[string]interface{}{
			"error":     result.Error.Error(),
			"review_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	s.logger.Info(ctx, "review deleted", map[string]interface{}{
		"review_id": id,
	})
	return nil
}
