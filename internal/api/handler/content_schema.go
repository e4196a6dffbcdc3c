package handler

import "github.com/lamsaclean/backoffice-api/internal/core/domain"

type localizedText struct {
	Ar string `json:"ar" validate:"required"`
	En string `json:"en" validate:"required"`
}

type serviceItemRequest struct {
	Name        localizedText `json:"name"        validate:"required"`
	Description localizedText `json:"description" validate:"required"`
	Icon        string        `json:"icon"`
}

type testimonialRequest struct {
	Author string        `json:"author" validate:"required"`
	Quote  localizedText `json:"quote"  validate:"required"`
}

// updateContentRequest is a partial patch of the site copy. A nil services
// or testimonials list leaves the stored list untouched; a present list
// replaces it wholesale.
type updateContentRequest struct {
	HeroTitle    *localizedPatch      `json:"hero_title"`
	HeroSubtitle *localizedPatch      `json:"hero_subtitle"`
	Services     []serviceItemRequest `json:"services"     validate:"omitempty,dive"`
	Testimonials []testimonialRequest `json:"testimonials" validate:"omitempty,dive"`
}

type createPaletteRequest struct {
	Name       string `json:"name"       validate:"required"`
	Primary    string `json:"primary"    validate:"required,hexcolor"`
	Secondary  string `json:"secondary"  validate:"required,hexcolor"`
	Accent     string `json:"accent"     validate:"required,hexcolor"`
	Background string `json:"background" validate:"required,hexcolor"`
}

type updatePaletteRequest struct {
	Name       *string `json:"name"`
	Primary    *string `json:"primary"    validate:"omitempty,hexcolor"`
	Secondary  *string `json:"secondary"  validate:"omitempty,hexcolor"`
	Accent     *string `json:"accent"     validate:"omitempty,hexcolor"`
	Background *string `json:"background" validate:"omitempty,hexcolor"`
}

type listPalettesResponse struct {
	Data  []domain.ColorPalette `json:"data"`
	Total int                   `json:"total"`
}
