package jsonstore

import (
	"time"

	"github.com/lamsaclean/backoffice-api/internal/core/domain"
)

// Default datasets written out the first time a resource file is read.
// Customer and message files intentionally have no seed: both start empty
// and fill up through the API.

func seedPalettes() []domain.ColorPalette {
	now := time.Now().UTC()
	return []domain.ColorPalette{
		{
			ID: "PAL-0001", Name: "Fresh Mint",
			Primary: "#0FA36B", Secondary: "#0B7A50", Accent: "#F4B942", Background: "#F7FBF9",
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "PAL-0002", Name: "Deep Sea",
			Primary: "#1F6FEB", Secondary: "#11459C", Accent: "#58C1D4", Background: "#F5F8FE",
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "PAL-0003", Name: "Desert Sand",
			Primary: "#C98A3D", Secondary: "#8C5E2A", Accent: "#4E7A5A", Background: "#FBF7F1",
			CreatedAt: now, UpdatedAt: now,
		},
	}
}

func seedNotifications() []domain.Notification {
	now := time.Now().UTC()
	return []domain.Notification{
		{
			ID:        "NTF-0001",
			Title:     "Welcome to the back office",
			Body:      "Company settings and site content can be edited from the sidebar.",
			Category:  domain.NotificationCategorySystem,
			Priority:  domain.PriorityNormal,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func seedSettings() domain.CompanySettings {
	return domain.CompanySettings{
		Name:    domain.LocalizedText{Ar: "لمسة كلين", En: "Lamsa Clean"},
		Tagline: domain.LocalizedText{Ar: "نظافة تلمع بلمسة واحدة", En: "Sparkling clean in one touch"},
		About: domain.LocalizedText{
			Ar: "شركة متخصصة في خدمات التنظيف المنزلي والتجاري.",
			En: "A company specialised in residential and commercial cleaning services.",
		},
		Phone:        "+966500000000",
		WhatsApp:     "+966500000000",
		Email:        "info@lamsaclean.example",
		Address:      domain.LocalizedText{Ar: "الرياض، حي الملقا", En: "Riyadh, Al Malqa district"},
		WorkingHours: domain.LocalizedText{Ar: "السبت - الخميس، ٨ ص - ١٠ م", En: "Sat - Thu, 8am - 10pm"},
		UpdatedAt:    time.Now().UTC(),
	}
}

func seedContent() domain.SiteContent {
	return domain.SiteContent{
		HeroTitle: domain.LocalizedText{
			Ar: "بيتك يستاهل لمسة نظافة",
			En: "Your home deserves a touch of clean",
		},
		HeroSubtitle: domain.LocalizedText{
			Ar: "فريق محترف، مواد آمنة، ونتيجة تلمع",
			En: "A professional team, safe products, and a sparkling result",
		},
		Services: []domain.ServiceItem{
			{
				Name:        domain.LocalizedText{Ar: "تنظيف المنازل", En: "Home cleaning"},
				Description: domain.LocalizedText{Ar: "تنظيف شامل لجميع الغرف والمرافق", En: "Deep cleaning for every room and facility"},
				Icon:        "home",
			},
			{
				Name:        domain.LocalizedText{Ar: "تنظيف المكاتب", En: "Office cleaning"},
				Description: domain.LocalizedText{Ar: "بيئة عمل نظيفة ومرتبة", En: "A clean and tidy work environment"},
				Icon:        "building",
			},
			{
				Name:        domain.LocalizedText{Ar: "تنظيف السجاد والمفروشات", En: "Carpet & upholstery cleaning"},
				Description: domain.LocalizedText{Ar: "غسيل بالبخار وإزالة البقع", En: "Steam washing and stain removal"},
				Icon:        "sofa",
			},
		},
		Testimonials: []domain.Testimonial{
			{
				Author: "Um Khalid",
				Quote: domain.LocalizedText{
					Ar: "خدمة ممتازة والتزام بالمواعيد",
					En: "Excellent service and always on time",
				},
			},
		},
		UpdatedAt: time.Now().UTC(),
	}
}
