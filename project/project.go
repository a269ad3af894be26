package project

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidTitle is returned when the title is empty.
	ErrInvalidTitle = errors.New("title is required")

	// ErrInvalidDescription is returned when the description is empty.
	ErrInvalidDescription = errors.New("description is required")

	// ErrInvalidImage is returned when the image URL is empty.
	ErrInvalidImage = errors.New("image is required")

	// ErrInvalidCategory is returned when the category is empty.
	ErrInvalidCategory = errors.New("category is required")
)

// Project is a portfolio entry shown on the site.
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;<-:create"`
}

// Validate checks that every required field is set.
func (p *Project) Validate() error {
	if blank(p.Title) {
		return ErrInvalidTitle
	}
	if blank(p.Description) {
		return ErrInvalidDescription
	}
	if blank(p.Image) {
		return ErrInvalidImage
	}
	if blank(p.Category) {
		return ErrInvalidCategory
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
