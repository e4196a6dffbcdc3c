package jsonstore

import (
	"context"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// SettingsRepository stores the singleton company profile in
// company-settings.json.
type SettingsRepository struct {
	doc *Document[domain.CompanySettings]
}

func NewSettingsRepository(opts Options) *SettingsRepository {
	return &SettingsRepository{doc: NewDocument(opts, "company-settings", seedSettings)}
}

func (r *SettingsRepository) Get(ctx context.Context) (*domain.CompanySettings, error) {
	s, err := r.doc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, mutate func(*domain.CompanySettings)) (*domain.CompanySettings, error) {
	s, err := r.doc.Mutate(ctx, mutate)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
