package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// LocalizedTextInput is a partial patch of one bilingual field.
type LocalizedTextInput struct {
	Ar *string
	En *string
}

// UpdateSettingsInput is a partial patch of the company settings document.
type UpdateSettingsInput struct {
	Name         *LocalizedTextInput
	Tagline      *LocalizedTextInput
	About        *LocalizedTextInput
	Phone        *string
	WhatsApp     *string
	Email        *string
	Address      *LocalizedTextInput
	WorkingHours *LocalizedTextInput
	Instagram    *string
	Twitter      *string
	TikTok       *string
	Snapchat     *string
}

// SettingsService reads and patches the company profile.
type SettingsService interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, input UpdateSettingsInput) (*domain.CompanySettings, error)
}
