// Package catalog holds the static reference data the ordering flow is
// built on: base packages, add-on features, add-on pages, color
// palettes and professions. Everything here is fixed at compile time;
// accessors return copies and there is no mutation API.
package catalog

import "webatelier/internal/domain/entities"

// Base package prices.
const (
	PriceSinglePage = 1999.0
	PriceMultiPage  = 3999.0
)

var packages = []entities.Package{
	{
		ID:            "single-page",
		Name:          "Single-Page Website",
		Type:          entities.WebsiteTypeSinglePage,
		Price:         PriceSinglePage,
		OriginalPrice: 2499,
		Features: []string{
			"One scrolling page",
			"Responsive layout",
			"Contact form",
			"Basic SEO setup",
		},
	},
	{
		ID:            "multi-page",
		Name:          "Multi-Page Website",
		Type:          entities.WebsiteTypeMultiPage,
		Price:         PriceMultiPage,
		OriginalPrice: 4999,
		Features: []string{
			"Up to ten custom pages",
			"Responsive layout",
			"Navigation menu",
			"Contact form",
			"Extended SEO setup",
		},
	},
}

var features = []entities.Feature{
	{ID: "logo-design", Name: "Logo design", Price: 500, Category: entities.FeatureCategoryDesign},
	{ID: "custom-illustrations", Name: "Custom illustrations", Price: 750, Category: entities.FeatureCategoryDesign},
	{ID: "ssl-certificate", Name: "SSL certificate", Price: 150, Category: entities.FeatureCategorySecurity},
	{ID: "daily-backups", Name: "Daily backups", Price: 200, Category: entities.FeatureCategorySecurity},
	{ID: "live-chat", Name: "Live chat widget", Price: 350, Category: entities.FeatureCategoryCommunication},
	{ID: "newsletter", Name: "Newsletter integration", Price: 300, Category: entities.FeatureCategoryMarketing},
	{ID: "seo-audit", Name: "SEO audit and optimization", Price: 600, Category: entities.FeatureCategoryMarketing},
	{ID: "booking-system", Name: "Online booking system", Price: 900, Category: entities.FeatureCategoryFunctionality},
	{ID: "multilingual", Name: "Multilingual support", Price: 800, Category: entities.FeatureCategoryFunctionality},
	{ID: "premium-hosting", Name: "Premium hosting (1 year)", Price: 400, Category: entities.FeatureCategoryHosting},
	{ID: "priority-support", Name: "Priority support (6 months)", Price: 450, Category: entities.FeatureCategorySupport},
}

var pageOptions = []entities.PageOption{
	{ID: "about", Name: "About", Description: "Who you are and what you stand for", Price: 200},
	{ID: "services", Name: "Services", Description: "Detailed breakdown of what you offer", Price: 300},
	{ID: "portfolio", Name: "Portfolio", Description: "Showcase of your best work", Price: 250},
	{ID: "blog", Name: "Blog", Description: "Articles and news, with categories", Price: 350},
	{ID: "contact", Name: "Contact", Description: "Contact form, map and opening hours", Price: 150},
	{ID: "gallery", Name: "Gallery", Description: "Image gallery with lightbox", Price: 200},
	{ID: "faq", Name: "FAQ", Description: "Frequently asked questions", Price: 150},
	{ID: "testimonials", Name: "Testimonials", Description: "Client reviews and ratings", Price: 150},
}

var palettes = []entities.ColorPalette{
	{ID: "ocean", Name: "Ocean", Colors: [3]string{"#0A2463", "#3E92CC", "#FFFAFF"}},
	{ID: "forest", Name: "Forest", Colors: [3]string{"#1B4332", "#74C69D", "#F1FAEE"}},
	{ID: "sunset", Name: "Sunset", Colors: [3]string{"#9D0208", "#F48C06", "#FFF3B0"}},
	{ID: "mono", Name: "Monochrome", Colors: [3]string{"#212529", "#ADB5BD", "#F8F9FA"}},
	{ID: "royal", Name: "Royal", Colors: [3]string{"#3A0CA3", "#7209B7", "#F72585"}},
}

var professions = []string{
	"Photographer",
	"Lawyer",
	"Doctor",
	"Architect",
	"Consultant",
	"Restaurant owner",
	"Retail shop owner",
	"Fitness trainer",
	"Artist",
	"Other",
}

func Packages() []entities.Package {
	out := make([]entities.Package, len(packages))
	copy(out, packages)
	return out
}

func Features() []entities.Feature {
	out := make([]entities.Feature, len(features))
	copy(out, features)
	return out
}

func PageOptions() []entities.PageOption {
	out := make([]entities.PageOption, len(pageOptions))
	copy(out, pageOptions)
	return out
}

func Palettes() []entities.ColorPalette {
	out := make([]entities.ColorPalette, len(palettes))
	copy(out, palettes)
	return out
}

func Professions() []string {
	out := make([]string, len(professions))
	copy(out, professions)
	return out
}

func PackageByType(t entities.WebsiteType) (entities.Package, bool) {
	for _, p := range packages {
		if p.Type == t {
			return p, true
		}
	}
	return entities.Package{}, false
}

func FeatureByID(id string) (entities.Feature, bool) {
	for _, f := range features {
		if f.ID == id {
			return f, true
		}
	}
	return entities.Feature{}, false
}

func PageOptionByID(id string) (entities.PageOption, bool) {
	for _, p := range pageOptions {
		if p.ID == id {
			return p, true
		}
	}
	return entities.PageOption{}, false
}

func PaletteByID(id string) (entities.ColorPalette, bool) {
	for _, p := range palettes {
		if p.ID == id {
			return p, true
		}
	}
	return entities.ColorPalette{}, false
}

func ProfessionKnown(name string) bool {
	for _, p := range professions {
		if p == name {
			return true
		}
	}
	return false
}
