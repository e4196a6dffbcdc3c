package ports

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// SettingsRepository persists the singleton company settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.CompanySettings, error)
	Update(ctx context.Context, mutate func(*domain.CompanySettings)) (*domain.CompanySettings, error)
}
