package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// ServiceItemInput is one full service entry; the services list is replaced
// wholesale when present in the patch.
type ServiceItemInput struct {
	NameAr        string
	NameEn        string
	DescriptionAr string
	DescriptionEn string
	Icon          string
}

// TestimonialInput is one full testimonial entry.
type TestimonialInput struct {
	Author  string
	QuoteAr string
	QuoteEn string
}

// UpdateContentInput is a partial patch of the site content document.
type UpdateContentInput struct {
	HeroTitle    *LocalizedTextInput
	HeroSubtitle *LocalizedTextInput
	Services     []ServiceItemInput // nil = untouched, empty slice = cleared
	Testimonials []TestimonialInput
}

// CreatePaletteInput carries a new color palette.
type CreatePaletteInput struct {
	Name       string
	Primary    string
	Secondary  string
	Accent     string
	Background string
}

// UpdatePaletteInput is a partial patch of one palette.
type UpdatePaletteInput struct {
	Name       *string
	Primary    *string
	Secondary  *string
	Accent     *string
	Background *string
}

// ContentService manages the editable site copy and the color palettes.
type ContentService interface {
	GetContent(ctx context.Context) (*domain.SiteContent, error)
	UpdateContent(ctx context.Context, input UpdateContentInput) (*domain.SiteContent, error)

	ListPalettes(ctx context.Context) ([]domain.ColorPalette, error)
	CreatePalette(ctx context.Context, input CreatePaletteInput) (*domain.ColorPalette, error)
	UpdatePalette(ctx context.Context, id string, input UpdatePaletteInput) (*domain.ColorPalette, error)
	ActivatePalette(ctx context.Context, id string) (*domain.ColorPalette, error)
	DeletePalette(ctx context.Context, id string) error
}
