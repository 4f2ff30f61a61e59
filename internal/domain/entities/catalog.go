package entities

// WebsiteType selects the base package of an order.
//
// Exactly two packages are sellable: a single-page site and a
// multi-page site. The type drives base pricing and whether add-on
// pages participate in the total.

type WebsiteType string

const (
	WebsiteTypeSinglePage WebsiteType = "single-page"
	WebsiteTypeMultiPage  WebsiteType = "multi-page"
)

func (t WebsiteType) Valid() bool {
	return t == WebsiteTypeSinglePage || t == WebsiteTypeMultiPage
}

// FeatureCategory groups optional add-on features for display.

type FeatureCategory string

const (
	FeatureCategoryDesign        FeatureCategory = "design"
	FeatureCategorySecurity      FeatureCategory = "security"
	FeatureCategoryCommunication FeatureCategory = "communication"
	FeatureCategoryMarketing     FeatureCategory = "marketing"
	FeatureCategoryFunctionality FeatureCategory = "functionality"
	FeatureCategoryHosting       FeatureCategory = "hosting"
	FeatureCategorySupport       FeatureCategory = "support"
)

// Package is a sellable base website package.
type Package struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Type          WebsiteType `json:"type"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	Features      []string    `json:"features"`
}

// Feature is an optional add-on with a fixed price.
type Feature struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Category FeatureCategory `json:"category"`
}

// PageOption is an optional add-on page, priced only for multi-page
// orders.
type PageOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// ColorPalette is a predefined set of three colors.
type ColorPalette struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Colors [3]string `json:"colors"`
}
