package client

import (
	"context"

	"github.com/hairizuan-noorazman/showcase/api"
	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/partner"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/review"
	"github.com/hairizuan-noorazman/showcase/service"
)

func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	return list[project.Project](ctx, c, api.Projects)
}

func (c *Client) GetProject(ctx context.Context, id uint) (*project.Project, error) {
	return object[project.Project](ctx, c, api.Projects, api.ActionGet, idParams(id), nil)
}

func (c *Client) CreateProject(ctx context.Context, in api.ProjectInput) (*project.Project, error) {
	return object[project.Project](ctx, c, api.Projects, api.ActionCreate, nil, in)
}

// UpdateProject sends only the fields supplied in patch.
func (c *Client) UpdateProject(ctx context.Context, id uint, patch *api.Patch[api.ProjectInput]) (*project.Project, error) {
	return object[project.Project](ctx, c, api.Projects, api.ActionUpdate, idParams(id), patch)
}

func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return remove(ctx, c, api.Projects, id)
}

func (c *Client) ListServices(ctx context.Context) ([]service.Service, error) {
	return list[service.Service](ctx, c, api.Services)
}

func (c *Client) GetService(ctx context.Context, id uint) (*service.Service, error) {
	return object[service.Service](ctx, c, api.Services, api.ActionGet, idParams(id), nil)
}

func (c *Client) CreateService(ctx context.Context, in api.ServiceInput) (*service.Service, error) {
	return object[service.Service](ctx, c, api.Services, api.ActionCreate, nil, in)
}

func (c *Client) UpdateService(ctx context.Context, id uint, patch *api.Patch[api.ServiceInput]) (*service.Service, error) {
	return object[service.Service](ctx, c, api.Services, api.ActionUpdate, idParams(id), patch)
}

func (c *Client) DeleteService(ctx context.Context, id uint) error {
	return remove(ctx, c, api.Services, id)
}

func (c *Client) ListArticles(ctx context.Context) ([]article.Article, error) {
	return list[article.Article](ctx, c, api.Articles)
}

func (c *Client) GetArticle(ctx context.Context, id uint) (*article.Article, error) {
	return object[article.Article](ctx, c, api.Articles, api.ActionGet, idParams(id), nil)
}

func (c *Client) CreateArticle(ctx context.Context, in api.ArticleInput) (*article.Article, error) {
	return object[article.Article](ctx, c, api.Articles, api.ActionCreate, nil, in)
}

func (c *Client) UpdateArticle(ctx context.Context, id uint, patch *api.Patch[api.ArticleInput]) (*article.Article, error) {
	return object[article.Article](ctx, c, api.Articles, api.ActionUpdate, idParams(id), patch)
}

func (c *Client) DeleteArticle(ctx context.Context, id uint) error {
	return remove(ctx, c, api.Articles, id)
}

func (c *Client) ListReviews(ctx context.Context) ([]review.Review, error) {
	return list[review.Review](ctx, c, api.Reviews)
}

func (c *Client) CreateReview(ctx context.Context, in api.ReviewInput) (*review.Review, error) {
	return object[review.Review](ctx, c, api.Reviews, api.ActionCreate, nil, in)
}

func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	return remove(ctx, c, api.Reviews, id)
}

func (c *Client) ListPartners(ctx context.Context) ([]partner.Partner, error) {
	return list[partner.Partner](ctx, c, api.Partners)
}

func (c *Client) CreatePartner(ctx context.Context, in api.PartnerInput) (*partner.Partner, error) {
	return object[partner.Partner](ctx, c, api.Partners, api.ActionCreate, nil, in)
}

func (c *Client) DeletePartner(ctx context.Context, id uint) error {
	return remove(ctx, c, api.Partners, id)
}
