package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

// SettingsService reads and patches the singleton company profile.
type SettingsService struct {
	repo ports.SettingsRepository
	log  zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, log: log}
}

func (s *SettingsService) Get(ctx context.Context) (*domain.CompanySettings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, input ports.UpdateSettingsInput) (*domain.CompanySettings, error) {
	updated, err := s.repo.Update(ctx, func(cs *domain.CompanySettings) {
		applyLocalized(&cs.Name, input.Name)
		applyLocalized(&cs.Tagline, input.Tagline)
		applyLocalized(&cs.About, input.About)
		applyLocalized(&cs.Address, input.Address)
		applyLocalized(&cs.WorkingHours, input.WorkingHours)
		if input.Phone != nil {
			cs.Phone = *input.Phone
		}
		if input.WhatsApp != nil {
			cs.WhatsApp = *input.WhatsApp
		}
		if input.Email != nil {
			cs.Email = *input.Email
		}
		if input.Instagram != nil {
			cs.Social.Instagram = *input.Instagram
		}
		if input.Twitter != nil {
			cs.Social.Twitter = *input.Twitter
		}
		if input.TikTok != nil {
			cs.Social.TikTok = *input.TikTok
		}
		if input.Snapchat != nil {
			cs.Social.Snapchat = *input.Snapchat
		}
		cs.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Msg("company settings updated")
	return updated, nil
}

// applyLocalized merges a bilingual patch: each language is only replaced
// when present.
func applyLocalized(dst *domain.LocalizedText, patch *ports.LocalizedTextInput) {
	if patch == nil {
		return
	}
	if patch.Ar != nil {
		dst.Ar = *patch.Ar
	}
	if patch.En != nil {
		dst.En = *patch.En
	}
}
