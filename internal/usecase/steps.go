package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"webatelier/internal/domain/entities"
)

// FieldError is a single per-field validation failure, surfaced inline
// so the customer can correct the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StepInvalidError blocks forward navigation: the active step's
// required fields failed their constraints. Fully recoverable by
// correcting input; it never reaches the network layer.
type StepInvalidError struct {
	Step   int
	Fields []FieldError
}

func (e *StepInvalidError) Error() string {
	return fmt.Sprintf("step %d invalid: %d field(s) failed validation", e.Step, len(e.Fields))
}

// Free-text length constraints for the special-requests step.
const (
	knowledgeTextMinLen = 10
	knowledgeTextMaxLen = 1000
)

const minSelectedPages = 3

// validateStep applies the per-step schema. The features step and the
// summary step are always valid; the summary only reviews.
func validateStep(step int, draft *entities.OrderDraft, selection *entities.SelectionSet) []FieldError {
	switch step {
	case entities.WizardStepPersonalInfo:
		return validatePersonalInfo(draft)
	case entities.WizardStepWebsiteDetails:
		return validateWebsiteDetails(draft, selection)
	case entities.WizardStepDesignPreferences:
		return validateDesignPreferences(draft)
	case entities.WizardStepFeatures, entities.WizardStepSummary:
		return nil
	case entities.WizardStepSpecialRequests:
		return validateSpecialRequests(draft)
	}
	return nil
}

func validatePersonalInfo(draft *entities.OrderDraft) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(draft.CustomerName)) < 2 {
		errs = append(errs, FieldError{Field: "customer_name", Message: "name must be at least 2 characters"})
	}
	if len(strings.TrimSpace(draft.CustomerSurname)) < 2 {
		errs = append(errs, FieldError{Field: "customer_surname", Message: "surname must be at least 2 characters"})
	}
	if !emailValid(draft.CustomerEmail) {
		errs = append(errs, FieldError{Field: "customer_email", Message: "a valid email address is required"})
	}
	if strings.TrimSpace(draft.Profession) == "" {
		errs = append(errs, FieldError{Field: "profession", Message: "profession must be selected"})
	}
	return errs
}

func validateWebsiteDetails(draft *entities.OrderDraft, selection *entities.SelectionSet) []FieldError {
	var errs []FieldError
	if len(strings.TrimSpace(draft.WebsiteName)) < 2 {
		errs = append(errs, FieldError{Field: "website_name", Message: "website name must be at least 2 characters"})
	}
	if len(strings.TrimSpace(draft.TargetAudience)) < 5 {
		errs = append(errs, FieldError{Field: "target_audience", Message: "target audience must be at least 5 characters"})
	}
	if len(strings.TrimSpace(draft.Purpose)) < 10 {
		errs = append(errs, FieldError{Field: "purpose", Message: "purpose must be at least 10 characters"})
	}
	if !draft.WebsiteType.Valid() {
		errs = append(errs, FieldError{Field: "website_type", Message: "website type must be selected"})
	} else if draft.WebsiteType == entities.WebsiteTypeMultiPage && selection.PageCount() < minSelectedPages {
		errs = append(errs, FieldError{
			Field:   "selected_pages",
			Message: fmt.Sprintf("a multi-page website needs at least %d pages", minSelectedPages),
		})
	}
	return errs
}

func validateDesignPreferences(draft *entities.OrderDraft) []FieldError {
	if strings.TrimSpace(draft.ColorPalette) == "" {
		return []FieldError{{Field: "color_palette", Message: "a color palette must be chosen"}}
	}
	return nil
}

func validateSpecialRequests(draft *entities.OrderDraft) []FieldError {
	n := len(draft.KnowledgeText)
	if n < knowledgeTextMinLen || n > knowledgeTextMaxLen {
		return []FieldError{{
			Field:   "knowledge_text",
			Message: fmt.Sprintf("tell us about your business in %d to %d characters", knowledgeTextMinLen, knowledgeTextMaxLen),
		}}
	}
	return nil
}

func emailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
