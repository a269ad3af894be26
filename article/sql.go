package article

import (
	"context"
	"errors"
	"time"

	"github.com/hairizuan-noorazman/showcase/logger"
	"gorm.io/gorm"
)

// updatableColumns are written by Update; id and created_at never change.
var updatableColumns = []string{"title", "content", "image"}

// SQLStore implements the Store interface using GORM.
type SQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLStore creates a new GORM-backed article store.
func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

func (s *SQLStore) List(ctx context.Context) ([]*Article, error) {
	articles := []*Article{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&articles).Error; err != nil {
		s.logger.Error(ctx, "failed to list articles", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return articles, nil
}

func (s *SQLStore) GetByID(ctx context.Context, id uint) (*Article, error) {
	var article Article
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		s.logger.Error(ctx, "failed to get article by ID", map[string]interface{}{
			"error":      err.Error(),
			"article_id": id,
		})
		return nil, err
	}
	return &article, nil
}

// Create creates a new article with a server-assigned ID and CreatedAt.
func (s *SQLStore) Create(ctx context.Context, article *Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = 0
	article.CreatedAt = time.Time{}

	if err := s.db.WithContext(ctx).Create(article).Error; err != nil {
		s.logger.Error(ctx, "failed to create article", map[string]interface{}{
			"error": err.Error(),
			"title": article.Title,
		})
		return err
	}

	s.logger.Info(ctx, "article created", map[string]interface{}{
		"article_id": article.ID,
	})
	return nil
}

func (s *SQLStore) Update(ctx context.Context, id uint, setters ...UpdateSetter) (*Article, error) {
	article, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, setter := range setters {
		if err := setter(article); err != nil {
			return nil, err
		}
	}

	// Updates never inserts, so a row deleted since the read stays deleted.
	result := s.db.WithContext(ctx).Model(article).Select(updatableColumns).Updates(article)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to update article", map[string]interface{}{
			"error":      result.Error.Error(),
			"article_id": id,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrArticleNotFound
	}

	s.logger.Info(ctx, "article updated", map[string]interface{}{
		"article_id": id,
	})
	return article, nil
}

func (s *SQLStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Article{}, id)
	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete article", map[string]interface{}{
			"error":      result.Error.Error(),
			"article_id": id,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}

	s.logger.Info(ctx, "article deleted", map[string]interface{}{
		"article_id": id,
	})
	return nil
}
