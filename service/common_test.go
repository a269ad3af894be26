package service

import (
	"testing"

	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/testutil"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Service{})

	return db, NewSQLStore(db, logger.NewTestLogger())
}

func createTestService(title string, icon *string) *Service {
	return &Service{
		Title:       title,
		Description: "Integrated construction services",
		Image:       "https://images.example.com/construction.jpg",
		Icon:        icon,
	}
}

func strPtr(s string) *string {
	return &s
}
