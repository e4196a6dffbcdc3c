package domain

import "time"

// LocalizedText carries one value per supported site language.
type LocalizedText struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// SocialLinks holds the company's social media URLs.
type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Snapchat  string `json:"snapchat,omitempty"`
}

// CompanySettings is the singleton company profile shown across the site.
type CompanySettings struct {
	Name         LocalizedText `json:"name"`
	Tagline      LocalizedText `json:"tagline"`
	About        LocalizedText `json:"about"`
	Phone        string        `json:"phone"`
	WhatsApp     string        `json:"whatsapp,omitempty"`
	Email        string        `json:"email"`
	Address      LocalizedText `json:"address"`
	WorkingHours LocalizedText `json:"working_hours"`
	Social       SocialLinks   `json:"social"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
