package partner

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

func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

func (s *SQLStore) List(ctx context.Context) ([]*Partner, error) {
	partners := []*Partner{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&partners).Error; err != nil {
		s.logger.Error(ctx, "failed to list partners", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return partners, nil
}

func (s *SQLStore) Create(ctx context.Context, partner *Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	partner.ID = 0
	if err := s.db.WithContext(ctx).Create(partner).Error; err != nil {
		s.logger.Error(ctx, "failed to create partner", map[string]interface{}{
			"error": err.Error(),
			"name":  partner.Name,
		})
		return err
	}

	s.logger.Info(ctx, "partner created", map[string]interface{}{
		"partner_id": partner.ID,
	})
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Partner{}, id)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete partner", map[string]interface{}{
			"error":      result.Error.Error(),
			"partner_id": id,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPartnerNotFound
	}

	s.logger.Info(ctx, "partner deleted", map[string]interface{}{
		"partner_id": id,
	})
	return nil
}
