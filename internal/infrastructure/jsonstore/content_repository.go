package jsonstore

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// ContentRepository stores the singleton site copy in site-content.json.
type ContentRepository struct {
	doc *Document[domain.SiteContent]
}

func NewContentRepository(opts Options) *ContentRepository {
	return &ContentRepository{doc: NewDocument(opts, "site-content", seedContent)}
}

func (r *ContentRepository) Get(ctx context.Context) (*domain.SiteContent, error) {
	c, err := r.doc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ContentRepository) Update(ctx context.Context, mutate func(*domain.SiteContent)) (*domain.SiteContent, error) {
	c, err := r.doc.Mutate(ctx, mutate)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// PaletteRepository stores the site themes in color-palettes.json, seeded
// with three defaults (the first active).
type PaletteRepository struct {
	coll *Collection[domain.ColorPalette]
}

func NewPaletteRepository(opts Options) *PaletteRepository {
	return &PaletteRepository{coll: NewCollection(opts, "color-palettes", seedPalettes)}
}

func (r *PaletteRepository) List(ctx context.Context) ([]domain.ColorPalette, error) {
	return r.coll.All(ctx)
}

func (r *PaletteRepository) Create(ctx context.Context, p *domain.ColorPalette) (*domain.ColorPalette, error) {
	var created domain.ColorPalette
	err := r.coll.Mutate(ctx, func(items []domain.ColorPalette) ([]domain.ColorPalette, error) {
		ids := make([]string, len(items))
		for i := range items {
			ids[i] = items[i].ID
		}
		p.ID = NextID("PAL", ids)
		created = *p
		return append([]domain.ColorPalette{created}, items...), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *PaletteRepository) Update(ctx context.Context, id string, mutate func(*domain.ColorPalette)) (*domain.ColorPalette, error) {
	var updated domain.ColorPalette
	err := r.coll.Mutate(ctx, func(items []domain.ColorPalette) ([]domain.ColorPalette, error) {
		for i := range items {
			if items[i].ID == id {
				mutate(&items[i])
				updated = items[i]
				return items, nil
			}
		}
		return nil, domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Activate flips id on and every other palette off in one write-back, so
// the single-active invariant holds no matter what state the file was in.
func (r *PaletteRepository) Activate(ctx context.Context, id string) (*domain.ColorPalette, error) {
	var activated domain.ColorPalette
	err := r.coll.Mutate(ctx, func(items []domain.ColorPalette) ([]domain.ColorPalette, error) {
		found := false
		for i := range items {
			items[i].Active = items[i].ID == id
			if items[i].Active {
				activated = items[i]
				found = true
			}
		}
		if !found {
			return nil, domain.ErrNotFound
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &activated, nil
}

func (r *PaletteRepository) Delete(ctx context.Context, id string) error {
	return r.coll.Mutate(ctx, func(items []domain.ColorPalette) ([]domain.ColorPalette, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}
