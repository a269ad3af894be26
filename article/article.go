package article

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrArticleNotFound is returned when an article is not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidTitle is returned when the title is empty.
	ErrInvalidTitle = errors.New("title is required")

	// ErrInvalidContent is returned when the body is empty.
	ErrInvalidContent = errors.New("content is required")

	// ErrInvalidImage is returned when the cover image URL is empty.
	ErrInvalidImage = errors.New("image is required")
)

// Article is a blog post.
type Article struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Image     string    `json:"image" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime;<-:create"`
}

func (a *Article) Validate() error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return ErrInvalidTitle
	case strings.TrimSpace(a.Content) == "":
		return ErrInvalidContent
	case strings.TrimSpace(a.Image) == "":
		return ErrInvalidImage
	}
	return nil
}
