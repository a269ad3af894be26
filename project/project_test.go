package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProject_Validate(t *testing.T) {
	valid := func() Project {
		return Project{
			Title:       "Luxury Villa",
			Description: "Finishing works",
			Image:       "https://images.example.com/villa.jpg",
			Category:    "Residential",
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Project)
		wantErr error
	}{
		{
			name:    "valid project",
			mutate:  func(p *Project) {},
			wantErr: nil,
		},
		{
			name:    "missing title",
			mutate:  func(p *Project) { p.Title = "" },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "whitespace title",
			mutate:  func(p *Project) { p.Title = "   " },
			wantErr: ErrInvalidTitle,
		},
		{
			name:    "missing description",
			mutate:  func(p *Project) { p.Description = "" },
			wantErr: ErrInvalidDescription,
		},
		{
			name:    "missing image",
			mutate:  func(p *Project) { p.Image = "" },
			wantErr: ErrInvalidImage,
		},
		{
			name:    "missing category",
			mutate:  func(p *Project) { p.Category = "" },
			wantErr: ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
