package entities

// OrderDraft is the in-progress, unsubmitted record of a customer's
// website order. It is a sparse field-level accumulator: steps of the
// wizard fill it in piecemeal and no validation happens here.
//
// SelectedPages and TotalPrice are derived fields kept in sync with
// the selection set by the pricing refresh, so the draft alone is a
// complete submission snapshot.

type OrderDraft struct {
	CustomerName    string      `json:"customer_name"`
	CustomerSurname string      `json:"customer_surname"`
	CustomerEmail   string      `json:"customer_email"`
	Profession      string      `json:"profession"`
	WebsiteName     string      `json:"website_name"`
	WebsiteType     WebsiteType `json:"website_type"`
	TargetAudience  string      `json:"target_audience"`
	Purpose         string      `json:"purpose"`
	ColorPalette    string      `json:"color_palette"`
	KnowledgeText   string      `json:"knowledge_text"`
	SelectedPages   []string    `json:"selected_pages"`
	TotalPrice      float64     `json:"total_price"`
}

// DraftPatch is a partial update of an OrderDraft. Nil fields are left
// untouched; set fields overwrite, including to an empty value.
type DraftPatch struct {
	CustomerName    *string
	CustomerSurname *string
	CustomerEmail   *string
	Profession      *string
	WebsiteName     *string
	WebsiteType     *WebsiteType
	TargetAudience  *string
	Purpose         *string
	ColorPalette    *string
	KnowledgeText   *string
}

// Apply shallow-merges the patch into the draft.
func (d *OrderDraft) Apply(p DraftPatch) {
	if p.CustomerName != nil {
		d.CustomerName = *p.CustomerName
	}
	if p.CustomerSurname != nil {
		d.CustomerSurname = *p.CustomerSurname
	}
	if p.CustomerEmail != nil {
		d.CustomerEmail = *p.CustomerEmail
	}
	if p.Profession != nil {
		d.Profession = *p.Profession
	}
	if p.WebsiteName != nil {
		d.WebsiteName = *p.WebsiteName
	}
	if p.WebsiteType != nil {
		d.WebsiteType = *p.WebsiteType
	}
	if p.TargetAudience != nil {
		d.TargetAudience = *p.TargetAudience
	}
	if p.Purpose != nil {
		d.Purpose = *p.Purpose
	}
	if p.ColorPalette != nil {
		d.ColorPalette = *p.ColorPalette
	}
	if p.KnowledgeText != nil {
		d.KnowledgeText = *p.KnowledgeText
	}
}
