package domain

import "time"

// ServiceItem is one offering on the public services section.
type ServiceItem struct {
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Icon        string        `json:"icon,omitempty"`
}

// Testimonial is one customer quote on the public site.
type Testimonial struct {
	Author string        `json:"author"`
	Quote  LocalizedText `json:"quote"`
}

// SiteContent is the singleton editable copy of the marketing site.
type SiteContent struct {
	HeroTitle    LocalizedText `json:"hero_title"`
	HeroSubtitle LocalizedText `json:"hero_subtitle"`
	Services     []ServiceItem `json:"services"`
	Testimonials []Testimonial `json:"testimonials"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ColorPalette is a selectable site theme. Exactly one palette is
// expected to be active at a time; activating one deactivates the rest.
type ColorPalette struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Primary    string    `json:"primary"`
	Secondary  string    `json:"secondary"`
	Accent     string    `json:"accent"`
	Background string    `json:"background"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
