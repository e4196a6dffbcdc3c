package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// ContentService manages the editable site copy and the color palettes.
type ContentService struct {
	content  ports.ContentRepository
	palettes ports.PaletteRepository
	log      zerolog.Logger
}

func NewContentService(content ports.ContentRepository, palettes ports.PaletteRepository, log zerolog.Logger) *ContentService {
	return &ContentService{content: content, palettes: palettes, log: log}
}

func (s *ContentService) GetContent(ctx context.Context) (*domain.SiteContent, error) {
	return s.content.Get(ctx)
}

func (s *ContentService) UpdateContent(ctx context.Context, input ports.UpdateContentInput) (*domain.SiteContent, error) {
	updated, err := s.content.Update(ctx, func(sc *domain.SiteContent) {
		applyLocalized(&sc.HeroTitle, input.HeroTitle)
		applyLocalized(&sc.HeroSubtitle, input.HeroSubtitle)
		if input.Services != nil {
			services := make([]domain.ServiceItem, len(input.Services))
			for i, in := range input.Services {
				services[i] = domain.ServiceItem{
					Name:        domain.LocalizedText{Ar: in.NameAr, En: in.NameEn},
					Description: domain.LocalizedText{Ar: in.DescriptionAr, En: in.DescriptionEn},
					Icon:        in.Icon,
				}
			}
			sc.Services = services
		}
		if input.Testimonials != nil {
			testimonials := make([]domain.Testimonial, len(input.Testimonials))
			for i, in := range input.Testimonials {
				testimonials[i] = domain.Testimonial{
					Author: in.Author,
					Quote:  domain.LocalizedText{Ar: in.QuoteAr, En: in.QuoteEn},
				}
			}
			sc.Testimonials = testimonials
		}
		sc.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Msg("site content updated")
	return updated, nil
}

func (s *ContentService) ListPalettes(ctx context.Context) ([]domain.ColorPalette, error) {
	return s.palettes.List(ctx)
}

func (s *ContentService) CreatePalette(ctx context.Context, input ports.CreatePaletteInput) (*domain.ColorPalette, error) {
	now := time.Now().UTC()
	palette := &domain.ColorPalette{
		Name:       input.Name,
		Primary:    input.Primary,
		Secondary:  input.Secondary,
		Accent:     input.Accent,
		Background: input.Background,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.palettes.Create(ctx, palette)
}

func (s *ContentService) UpdatePalette(ctx context.Context, id string, input ports.UpdatePaletteInput) (*domain.ColorPalette, error) {
	return s.palettes.Update(ctx, id, func(p *domain.ColorPalette) {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Primary != nil {
			p.Primary = *input.Primary
		}
		if input.Secondary != nil {
			p.Secondary = *input.Secondary
		}
		if input.Accent != nil {
			p.Accent = *input.Accent
		}
		if input.Background != nil {
			p.Background = *input.Background
		}
		p.UpdatedAt = time.Now().UTC()
	})
}

func (s *ContentService) ActivatePalette(ctx context.Context, id string) (*domain.ColorPalette, error) {
	activated, err := s.palettes.Activate(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("palette_id", id).Msg("palette activated")
	return activated, nil
}

func (s *ContentService) DeletePalette(ctx context.Context, id string) error {
	return s.palettes.Delete(ctx, id)
}
