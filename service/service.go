package service

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidTitle is returned when the title is empty.
	ErrInvalidTitle = errors.New("title is required")

	// ErrInvalidDescription is returned when the description is empty.
	ErrInvalidDescription = errors.New("description is required")

	// ErrInvalidImage is returned when the image URL is empty.
	ErrInvalidImage = errors.New("image is required")
)

// Service is an offering listed on the services page.
// Icon is an optional icon label understood by the front end (e.g. "Hammer").
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"type:text;not null"`
	Icon        *string   `json:"icon"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;<-:create"`
}

// Validate checks that every required field is set.
func (s *Service) Validate() error {
	if blank(s.Title) {
		return ErrInvalidTitle
	}
	if blank(s.Description) {
		return ErrInvalidDescription
	}
	if blank(s.Image) {
		return ErrInvalidImage
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
