package project

import (
	"testing"

	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and project store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Project{})

	log := logger.NewTestLogger()
	store := NewSQLStore(db, log)

	return db, store
}

// createTestProject creates a test project with default values.
func createTestProject(title, category string) *Project {
	return &Project{
		Title:       title,
		Description: "Finishing and decoration works",
		Image:       "https://images.example.com/villa.jpg",
		Category:    category,
	}
}
