package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
	"github.com/lamsaclean/backoffice-api/internal/core/ports"
)

type stubContentRepo struct {
	content domain.SiteContent
}

func (r *stubContentRepo) Get(_ context.Context) (*domain.SiteContent, error) {
	clone := r.content
	return &clone, nil
}

func (r *stubContentRepo) Update(_ context.Context, mutate func(*domain.SiteContent)) (*domain.SiteContent, error) {
	mutate(&r.content)
	clone := r.content
	return &clone, nil
}

type stubPaletteRepo struct {
	palettes []domain.ColorPalette
	nextID   int
}

func (r *stubPaletteRepo) List(_ context.Context) ([]domain.ColorPalette, error) {
	out := make([]domain.ColorPalette, len(r.palettes))
	copy(out, r.palettes)
	return out, nil
}

func (r *stubPaletteRepo) Create(_ context.Context, p *domain.ColorPalette) (*domain.ColorPalette, error) {
	r.nextID++
	p.ID = fmt.Sprintf("PAL-%04d", r.nextID)
	r.palettes = append(r.palettes, *p)
	clone := *p
	return &clone, nil
}

func (r *stubPaletteRepo) Update(_ context.Context, id string, mutate func(*domain.ColorPalette)) (*domain.ColorPalette, error) {
	for i := range r.palettes {
		if r.palettes[i].ID == id {
			mutate(&r.palettes[i])
			clone := r.palettes[i]
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubPaletteRepo) Activate(_ context.Context, id string) (*domain.ColorPalette, error) {
	var activated *domain.ColorPalette
	for i := range r.palettes {
		r.palettes[i].Active = r.palettes[i].ID == id
		if r.palettes[i].Active {
			clone := r.palettes[i]
			activated = &clone
		}
	}
	if activated == nil {
		return nil, domain.ErrNotFound
	}
	return activated, nil
}

func (r *stubPaletteRepo) Delete(_ context.Context, id string) error {
	for i := range r.palettes {
		if r.palettes[i].ID == id {
			r.palettes = append(r.palettes[:i], r.palettes[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newTestContentService(content *stubContentRepo, palettes *stubPaletteRepo) *ContentService {
	return NewContentService(content, palettes, zerolog.Nop())
}

func TestContentService_UpdateContent_PartialPatch(t *testing.T) {
	content := &stubContentRepo{content: domain.SiteContent{
		HeroTitle:    domain.LocalizedText{Ar: "عنوان", En: "Title"},
		HeroSubtitle: domain.LocalizedText{Ar: "فرعي", En: "Subtitle"},
		Services:     []domain.ServiceItem{{Icon: "spray"}},
	}}
	svc := newTestContentService(content, &stubPaletteRepo{})

	en := "Sparkling homes"
	updated, err := svc.UpdateContent(context.Background(), ports.UpdateContentInput{
		HeroTitle: &ports.LocalizedTextInput{En: &en},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.HeroTitle.En != en {
		t.Fatalf("english title not patched: %s", updated.HeroTitle.En)
	}
	if updated.HeroTitle.Ar != "عنوان" {
		t.Fatalf("arabic title must be untouched: %s", updated.HeroTitle.Ar)
	}
	if len(updated.Services) != 1 {
		t.Fatalf("nil services patch must leave list untouched: %d", len(updated.Services))
	}
}

func TestContentService_UpdateContent_ReplaceServices(t *testing.T) {
	content := &stubContentRepo{content: domain.SiteContent{
		Services: []domain.ServiceItem{{Icon: "old-1"}, {Icon: "old-2"}},
	}}
	svc := newTestContentService(content, &stubPaletteRepo{})

	updated, err := svc.UpdateContent(context.Background(), ports.UpdateContentInput{
		Services: []ports.ServiceItemInput{
			{NameAr: "تنظيف المنازل", NameEn: "Home cleaning", Icon: "home"},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Services) != 1 || updated.Services[0].Icon != "home" {
		t.Fatalf("services not replaced: %+v", updated.Services)
	}
	if updated.Services[0].Name.Ar != "تنظيف المنازل" {
		t.Fatalf("arabic name lost: %+v", updated.Services[0].Name)
	}

	// An explicit empty list clears the services.
	updated, err = svc.UpdateContent(context.Background(), ports.UpdateContentInput{
		Services: []ports.ServiceItemInput{},
	})
	if err != nil || len(updated.Services) != 0 {
		t.Fatalf("empty patch should clear services: %v, %+v", err, updated.Services)
	}
}

func TestContentService_CreateAndActivatePalette(t *testing.T) {
	palettes := &stubPaletteRepo{}
	svc := newTestContentService(&stubContentRepo{}, palettes)

	first, err := svc.CreatePalette(context.Background(), ports.CreatePaletteInput{
		Name: "Ocean", Primary: "#0077be", Secondary: "#00a8cc", Accent: "#ffd166", Background: "#f8f9fa",
	})
	if err != nil {
		t.Fatalf("create palette: %v", err)
	}
	if first.Active {
		t.Fatalf("new palette must not be active")
	}

	second, _ := svc.CreatePalette(context.Background(), ports.CreatePaletteInput{Name: "Desert"})
	if _, err := svc.ActivatePalette(context.Background(), first.ID); err != nil {
		t.Fatalf("activate: %v", err)
	}
	activated, err := svc.ActivatePalette(context.Background(), second.ID)
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if !activated.Active {
		t.Fatalf("activated palette not flagged")
	}

	list, _ := svc.ListPalettes(context.Background())
	activeCount := 0
	for _, p := range list {
		if p.Active {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Fatalf("expected exactly one active palette, got %d", activeCount)
	}
}

func TestSettingsService_Update_PartialPatch(t *testing.T) {
	repo := &stubSettingsRepo{settings: domain.CompanySettings{
		Name:  domain.LocalizedText{Ar: "لمسة كلين", En: "Lamsa Clean"},
		Phone: "+966500000000",
	}}
	svc := NewSettingsService(repo, zerolog.Nop())

	phone := "+966511111111"
	instagram := "https://instagram.com/lamsaclean"
	updated, err := svc.Update(context.Background(), ports.UpdateSettingsInput{
		Phone:     &phone,
		Instagram: &instagram,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Phone != phone {
		t.Fatalf("phone not patched: %s", updated.Phone)
	}
	if updated.Social.Instagram != instagram {
		t.Fatalf("instagram not patched: %s", updated.Social.Instagram)
	}
	if updated.Name.Ar != "لمسة كلين" {
		t.Fatalf("untouched field changed: %s", updated.Name.Ar)
	}
}

type stubSettingsRepo struct {
	settings domain.CompanySettings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.CompanySettings, error) {
	clone := r.settings
	return &clone, nil
}

func (r *stubSettingsRepo) Update(_ context.Context, mutate func(*domain.CompanySettings)) (*domain.CompanySettings, error) {
	mutate(&r.settings)
	clone := r.settings
	return &clone, nil
}
