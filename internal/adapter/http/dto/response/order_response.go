package response

import (
	"time"

	"webatelier/internal/domain/entities"
)

// OrderResponse is the canonical order schema at the boundary. The
// two historical backends used diverging field names; normalization
// happens once, here, instead of fallbacks scattered through business
// logic.
type OrderResponse struct {
	ID                 string    `json:"id"`
	CustomerName       string    `json:"customer_name"`
	CustomerSurname    string    `json:"customer_surname"`
	CustomerEmail      string    `json:"customer_email"`
	Profession         string    `json:"profession"`
	WebsiteName        string    `json:"website_name"`
	WebsiteType        string    `json:"website_type"`
	TargetAudience     string    `json:"target_audience"`
	Purpose            string    `json:"purpose"`
	ColorPalette       string    `json:"color_palette"`
	KnowledgeText      string    `json:"knowledge_text"`
	AdditionalFeatures []string  `json:"additional_features"`
	SelectedPages      []string  `json:"selected_pages"`
	TotalPrice         float64   `json:"total_price"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                 o.ID,
		CustomerName:       o.CustomerName,
		CustomerSurname:    o.CustomerSurname,
		CustomerEmail:      o.CustomerEmail,
		Profession:         o.Profession,
		WebsiteName:        o.WebsiteName,
		WebsiteType:        string(o.WebsiteType),
		TargetAudience:     o.TargetAudience,
		Purpose:            o.Purpose,
		ColorPalette:       o.ColorPalette,
		KnowledgeText:      o.KnowledgeText,
		AdditionalFeatures: o.AdditionalFeatures,
		SelectedPages:      o.SelectedPages,
		TotalPrice:         o.TotalPrice,
		Status:             string(o.Status),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
