package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// ContentRepository persists the singleton site content document.
type ContentRepository interface {
	Get(ctx context.Context) (*domain.SiteContent, error)
	Update(ctx context.Context, mutate func(*domain.SiteContent)) (*domain.SiteContent, error)
}

// PaletteRepository persists the color palettes resource file.
type PaletteRepository interface {
	List(ctx context.Context) ([]domain.ColorPalette, error)
	Create(ctx context.Context, p *domain.ColorPalette) (*domain.ColorPalette, error)
	Update(ctx context.Context, id string, mutate func(*domain.ColorPalette)) (*domain.ColorPalette, error)
	// Activate flips the given palette on and every other palette off in a
	// single write-back. Returns domain.ErrNotFound when the id is unknown.
	Activate(ctx context.Context, id string) (*domain.ColorPalette, error)
	Delete(ctx context.Context, id string) error
}
