package partner

import (
	"errors"
	"strings"
)

var (
	// ErrPartnerNotFound is returned when a partner is not found.
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrInvalidName is returned when the partner name is empty.
	ErrInvalidName = errors.New("name is required")

	// ErrInvalidLogo is returned when the logo URL is empty.
	ErrInvalidLogo = errors.New("logo is required")
)

// Partner is a supplier or client whose logo appears on the site.
type Partner struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	Logo string `json:"logo" gorm:"type:text;not null"`
}

func (p *Partner) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(p.Logo) == "" {
		return ErrInvalidLogo
	}
	return nil
}
