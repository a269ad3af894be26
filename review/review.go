package review

import (
	"errors"
	"strings"
)

const (
	// MinRating is the lowest accepted rating.
	MinRating = 1

	// MaxRating is the highest accepted rating.
	MaxRating = 5
)

var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidCustomerName is returned when the customer name is empty.
	ErrInvalidCustomerName = errors.New("customerName is required")

	// ErrInvalidContent is returned when the review text is empty.
	ErrInvalidContent = errors.New("content is required")

	// ErrInvalidRating is returned when the rating is outside MinRating..MaxRating.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Review is a customer testimonial. Reviews are append/delete only.
type Review struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	CustomerName string `json:"customerName" gorm:"not null"`
	Content      string `json:"content" gorm:"type:text;not null"`
	Rating       int    `json:"rating" gorm:"not null"`
}

// Validate checks required fields and the rating range.
func (r *Review) Validate() error {
	if strings.TrimSpace(r.CustomerName) == "" {
		return ErrInvalidCustomerName
	}
	if strings.TrimSpace(r.Content) == "" {
		return ErrInvalidContent
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}
