package api

import (
	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/partner"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/review"
	"github.com/hairizuan-noorazman/showcase/service"
)

// Create inputs carry the entity fields minus the server-generated id and createdAt.

type ProjectInput struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Image       string `json:"image" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,notblank"`
}

// Project builds an unsaved project.
func (in ProjectInput) Project() *project.Project {
	return &project.Project{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Category:    in.Category,
	}
}

type ServiceInput struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Description string  `json:"description" validate:"required,notblank"`
	Image       string  `json:"image" validate:"required,notblank"`
	Icon        *string `json:"icon,omitempty"`
}

// Service builds an unsaved service.
func (in ServiceInput) Service() *service.Service {
	return &service.Service{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		Icon:        in.Icon,
	}
}

type ArticleInput struct {
	Title   string `json:"title" validate:"required,notblank"`
	Content string `json:"content" validate:"required,notblank"`
	Image   string `json:"image" validate:"required,notblank"`
}

// Article builds an unsaved article.
func (in ArticleInput) Article() *article.Article {
	return &article.Article{
		Title:   in.Title,
		Content: in.Content,
		Image:   in.Image,
	}
}

type ReviewInput struct {
	CustomerName string `json:"customerName" validate:"required,notblank"`
	Content      string `json:"content" validate:"required,notblank"`
	Rating       int    `json:"rating" validate:"min=1,max=5"`
}

// Review builds an unsaved review.
func (in ReviewInput) Review() *review.Review {
	return &review.Review{
		CustomerName: in.CustomerName,
		Content:      in.Content,
		Rating:       in.Rating,
	}
}

type PartnerInput struct {
	Name string `json:"name" validate:"required,notblank"`
	Logo string `json:"logo" validate:"required,notblank"`
}

// Partner builds an unsaved partner.
func (in PartnerInput) Partner() *partner.Partner {
	return &partner.Partner{Name: in.Name, Logo: in.Logo}
}

// ErrorBody is the error payload of every route. Field is set for validation failures.
type ErrorBody struct {
	Message string `json:"message" validate:"required"`
	Field   string `json:"field,omitempty"`
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url" validate:"required"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status" validate:"required"`
}
