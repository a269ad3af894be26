// Package catalog groups the per-resource stores into the single persistence
// gateway handed to the HTTP layer, and owns first-run seeding.
package catalog

import (
	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/partner"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/review"
	"github.com/hairizuan-noorazman/showcase/service"
	"gorm.io/gorm"
)

// Gateway is the only component allowed to mutate catalog records.
type Gateway struct {
	Projects project.Store
	Services service.Store
	Articles article.Store
	Reviews  review.Store
	Partners partner.Store
}

// NewSQLGateway wires GORM-backed stores for every resource on the same connection pool.
func NewSQLGateway(db *gorm.DB, log logger.Logger) *Gateway {
	return &Gateway{
		Projects: project.NewSQLStore(db, log),
		Services: service.NewSQLStore(db, log),
		Articles: article.NewSQLStore(db, log),
		Reviews:  review.NewSQLStore(db, log),
		Partners: partner.NewSQLStore(db, log),
	}
}

// Models returns the GORM models backing the catalog tables.
func Models() []interface{} {
	return []interface{}{
		&project.Project{},
		&service.Service{},
		&article.Article{},
		&review.Review{},
		&partner.Partner{},
	}
}

// AutoMigrate creates or updates the catalog tables from the GORM models.
// Production databases use the SQL migrations in the database package instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
