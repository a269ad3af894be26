package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/hairizuan-noorazman/showcase/article"
	"github.com/hairizuan-noorazman/showcase/logger"
	"github.com/hairizuan-noorazman/showcase/partner"
	"github.com/hairizuan-noorazman/showcase/project"
	"github.com/hairizuan-noorazman/showcase/review"
	"github.com/hairizuan-noorazman/showcase/service"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// SeedData holds the baseline records inserted into empty collections.
type SeedData struct {
	Services []SeedService `yaml:"services"`
	Projects []SeedProject `yaml:"projects"`
	Reviews  []SeedReview  `yaml:"reviews"`
	Partners []SeedPartner `yaml:"partners"`
	Articles []SeedArticle `yaml:"articles"`
}

type SeedService struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Icon        string `yaml:"icon"`
}

type SeedProject struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Category    string `yaml:"category"`
}

type SeedReview struct {
	CustomerName string `yaml:"customer_name"`
	Content      string `yaml:"content"`
	Rating       int    `yaml:"rating"`
}

type SeedPartner struct {
	Name string `yaml:"name"`
	Logo string `yaml:"logo"`
}

type SeedArticle struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Image   string `yaml:"image"`
}

// SeedReport counts the records inserted per resource.
type SeedReport map[string]int

// Total returns the number of inserted records.
func (r SeedReport) Total() int {
	n := 0
	for _, v := range r {
		n += v
	}
	return n
}

// ParseSeedData decodes a YAML seed document.
func ParseSeedData(r io.Reader) (*SeedData, error) {
	var data SeedData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return &data, nil
}

// LoadSeedData reads seed data from path, or the embedded defaults when path is empty.
func LoadSeedData(path string) (*SeedData, error) {
	if path == "" {
		return DefaultSeedData()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return ParseSeedData(f)
}

// DefaultSeedData returns the embedded demonstration records.
func DefaultSeedData() (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(defaultSeed, &data); err != nil {
		return nil, fmt.Errorf("failed to decode embedded seed data: %w", err)
	}
	return &data, nil
}

// Seed inserts the baseline records into every collection that is currently empty.
// Collections that already hold rows are left alone. The empty check and the inserts
// are not atomic: two processes seeding at the same time can both insert.
func Seed(ctx context.Context, gw *Gateway, data *SeedData, log logger.Logger) (SeedReport, error) {
	report := SeedReport{}

	steps := []struct {
		resource string
		empty    func() (bool, error)
		insert   func() (int, error)
	}{
		{"services", isEmpty(ctx, gw.Services.List), func() (int, error) { return seedServices(ctx, gw.Services, data.Services) }},
		{"projects", isEmpty(ctx, gw.Projects.List), func() (int, error) { return seedProjects(ctx, gw.Projects, data.Projects) }},
		{"reviews", isEmpty(ctx, gw.Reviews.List), func() (int, error) { return seedReviews(ctx, gw.Reviews, data.Reviews) }},
		{"partners", isEmpty(ctx, gw.Partners.List), func() (int, error) { return seedPartners(ctx, gw.Partners, data.Partners) }},
		{"articles", isEmpty(ctx, gw.Articles.List), func() (int, error) { return seedArticles(ctx, gw.Articles, data.Articles) }},
	}

	for _, step := range steps {
		empty, err := step.empty()
		if err != nil {
			return report, fmt.Errorf("failed to inspect %s: %w", step.resource, err)
		}
		if !empty {
			continue
		}

		n, err := step.insert()
		report[step.resource] = n
		if err != nil {
			return report, fmt.Errorf("failed to seed %s: %w", step.resource, err)
		}

		log.Info(ctx, "seeded collection", map[string]interface{}{
			"resource": step.resource,
			"count":    n,
		})
	}

	return report, nil
}

func isEmpty[T any](ctx context.Context, list func(context.Context) ([]T, error)) func() (bool, error) {
	return func() (bool, error) {
		items, err := list(ctx)
		if err != nil {
			return false, err
		}
		return len(items) == 0, nil
	}
}

func seedServices(ctx context.Context, store service.Store, items []SeedService) (int, error) {
	for i, item := range items {
		svc := &service.Service{
			Title:       item.Title,
			Description: item.Description,
			Image:       item.Image,
		}
		if item.Icon != "" {
			icon := item.Icon
			svc.Icon = &icon
		}
		if err := store.Create(ctx, svc); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func seedProjects(ctx context.Context, store project.Store, items []SeedProject) (int, error) {
	for i, item := range items {
		err := store.Create(ctx, &project.Project{
			Title:       item.Title,
			Description: item.Description,
			Image:       item.Image,
			Category:    item.Category,
		})
		if err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func seedReviews(ctx context.Context, store review.Store, items []SeedReview) (int, error) {
	for i, item := range items {
		err := store.Create(ctx, &review.Review{
			CustomerName: item.CustomerName,
			Content:      item.Content,
			Rating:       item.Rating,
		})
		if err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func seedPartners(ctx context.Context, store partner.Store, items []SeedPartner) (int, error) {
	for i, item := range items {
		if err := store.Create(ctx, &partner.Partner{Name: item.Name, Logo: item.Logo}); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func seedArticles(ctx context.Context, store article.Store, items []SeedArticle) (int, error) {
	for i, item := range items {
		err := store.Create(ctx, &article.Article{
			Title:   item.Title,
			Content: item.Content,
			Image:   item.Image,
		})
		if err != nil {
			return i, err
		}
	}
	return len(items), nil
}
