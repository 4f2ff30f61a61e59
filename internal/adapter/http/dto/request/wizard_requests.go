package request

import "webatelier/internal/domain/entities"

// DraftUpdateRequest is the partial-update payload for a wizard
// session's draft. Pointer fields distinguish "not sent" from "sent
// empty": absent fields are preserved, present fields overwrite.
type DraftUpdateRequest struct {
	CustomerName    *string `json:"customer_name"`
	CustomerSurname *string `json:"customer_surname"`
	CustomerEmail   *string `json:"customer_email"`
	Profession      *string `json:"profession"`
	WebsiteName     *string `json:"website_name"`
	WebsiteType     *string `json:"website_type"`
	TargetAudience  *string `json:"target_audience"`
	Purpose         *string `json:"purpose"`
	ColorPalette    *string `json:"color_palette"`
	KnowledgeText   *string `json:"knowledge_text"`
}

func (r DraftUpdateRequest) ToPatch() entities.DraftPatch {
	p := entities.DraftPatch{
		CustomerName:    r.CustomerName,
		CustomerSurname: r.CustomerSurname,
		CustomerEmail:   r.CustomerEmail,
		Profession:      r.Profession,
		WebsiteName:     r.WebsiteName,
		TargetAudience:  r.TargetAudience,
		Purpose:         r.Purpose,
		ColorPalette:    r.ColorPalette,
		KnowledgeText:   r.KnowledgeText,
	}
	if r.WebsiteType != nil {
		t := entities.WebsiteType(*r.WebsiteType)
		p.WebsiteType = &t
	}
	return p
}

// FeatureSelectionRequest adds one feature to the selection set.
type FeatureSelectionRequest struct {
	FeatureID string `json:"feature_id" binding:"required"`
}

// PageSelectionRequest adds one add-on page to the selection set.
type PageSelectionRequest struct {
	PageID string `json:"page_id" binding:"required"`
}
