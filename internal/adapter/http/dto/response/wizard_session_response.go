package response

import (
	"webatelier/internal/domain/entities"
	"webatelier/internal/usecase"
)

// WizardSessionResponse is the full wizard state handed to the client
// after every mutation: current step, draft so far, selection and the
// last computed total.
type WizardSessionResponse struct {
	SessionID        string             `json:"session_id"`
	Step             int                `json:"step"`
	TotalSteps       int                `json:"total_steps"`
	Draft            DraftResponse      `json:"draft"`
	SelectedFeatures []entities.Feature `json:"selected_features"`
	SelectedPages    []string           `json:"selected_pages"`
	TotalPrice       float64            `json:"total_price"`
}

// DraftResponse is the canonical order-draft schema at the boundary.
// One field set, snake_case, no legacy aliases.
type DraftResponse struct {
	CustomerName    string `json:"customer_name"`
	CustomerSurname string `json:"customer_surname"`
	CustomerEmail   string `json:"customer_email"`
	Profession      string `json:"profession"`
	WebsiteName     string `json:"website_name"`
	WebsiteType     string `json:"website_type"`
	TargetAudience  string `json:"target_audience"`
	Purpose         string `json:"purpose"`
	ColorPalette    string `json:"color_palette"`
	KnowledgeText   string `json:"knowledge_text"`
}

func FromSessionState(s usecase.SessionState) WizardSessionResponse {
	return WizardSessionResponse{
		SessionID:  s.ID,
		Step:       s.Step,
		TotalSteps: s.TotalSteps,
		Draft: DraftResponse{
			CustomerName:    s.Draft.CustomerName,
			CustomerSurname: s.Draft.CustomerSurname,
			CustomerEmail:   s.Draft.CustomerEmail,
			Profession:      s.Draft.Profession,
			WebsiteName:     s.Draft.WebsiteName,
			WebsiteType:     string(s.Draft.WebsiteType),
			TargetAudience:  s.Draft.TargetAudience,
			Purpose:         s.Draft.Purpose,
			ColorPalette:    s.Draft.ColorPalette,
			KnowledgeText:   s.Draft.KnowledgeText,
		},
		SelectedFeatures: s.SelectedFeatures,
		SelectedPages:    s.SelectedPages,
		TotalPrice:       s.Draft.TotalPrice,
	}
}

// ValidationErrorResponse reports per-field failures that block
// forward navigation.
type ValidationErrorResponse struct {
	Code    string               `json:"code"`
	Message string               `json:"message"`
	Step    int                  `json:"step"`
	Fields  []usecase.FieldError `json:"fields"`
}

func FromStepInvalid(e *usecase.StepInvalidError) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    "STEP_INVALID",
		Message: "The current step has invalid fields",
		Step:    e.Step,
		Fields:  e.Fields,
	}
}
