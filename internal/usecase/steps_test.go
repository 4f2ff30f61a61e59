package usecase

import (
	"strings"
	"testing"

	"webatelier/internal/domain/entities"
)

func validDraft() *entities.OrderDraft {
	return &entities.OrderDraft{
		CustomerName:    "Ana",
		CustomerSurname: "Souza",
		CustomerEmail:   "ana@example.com",
		Profession:      "Photographer",
		WebsiteName:     "Ana Photography",
		WebsiteType:     entities.WebsiteTypeSinglePage,
		TargetAudience:  "couples planning a wedding",
		Purpose:         "showcase my portfolio and get bookings",
		ColorPalette:    "ocean",
		KnowledgeText:   "I have been shooting weddings for ten years.",
	}
}

func fieldNames(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func hasField(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateStep_PersonalInfo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if errs := validateStep(entities.WizardStepPersonalInfo, validDraft(), entities.NewSelectionSet()); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", fieldNames(errs))
		}
	})

	t.Run("empty draft reports every field", func(t *testing.T) {
		errs := validateStep(entities.WizardStepPersonalInfo, &entities.OrderDraft{}, entities.NewSelectionSet())
		for _, field := range []string{"customer_name", "customer_surname", "customer_email", "profession"} {
			if !hasField(errs, field) {
				t.Fatalf("expected %s to fail, got %v", field, fieldNames(errs))
			}
		}
	})

	t.Run("whitespace does not count toward minimum length", func(t *testing.T) {
		d := validDraft()
		d.CustomerName = " a "
		errs := validateStep(entities.WizardStepPersonalInfo, d, entities.NewSelectionSet())
		if !hasField(errs, "customer_name") {
			t.Fatalf("padded single character should fail: %v", fieldNames(errs))
		}
	})

	t.Run("email", func(t *testing.T) {
		cases := []struct {
			email string
			valid bool
		}{
			{"ana@example.com", true},
			{"a@b.co", true},
			{"not-an-email", false},
			{"ana@", false},
			{"", false},
			{"Ana <ana@example.com>", false},
		}
		for _, tc := range cases {
			d := validDraft()
			d.CustomerEmail = tc.email
			errs := validateStep(entities.WizardStepPersonalInfo, d, entities.NewSelectionSet())
			if tc.valid && hasField(errs, "customer_email") {
				t.Fatalf("%q should be accepted", tc.email)
			}
			if !tc.valid && !hasField(errs, "customer_email") {
				t.Fatalf("%q should be rejected", tc.email)
			}
		}
	})
}

func TestValidateStep_WebsiteDetails(t *testing.T) {
	t.Run("valid single-page", func(t *testing.T) {
		if errs := validateStep(entities.WizardStepWebsiteDetails, validDraft(), entities.NewSelectionSet()); len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", fieldNames(errs))
		}
	})

	t.Run("missing type", func(t *testing.T) {
		d := validDraft()
		d.WebsiteType = ""
		errs := validateStep(entities.WizardStepWebsiteDetails, d, entities.NewSelectionSet())
		if !hasField(errs, "website_type") {
			t.Fatalf("expected website_type to fail: %v", fieldNames(errs))
		}
	})

	t.Run("multi-page needs three pages", func(t *testing.T) {
		d := validDraft()
		d.WebsiteType = entities.WebsiteTypeMultiPage
		sel := entities.NewSelectionSet()
		sel.AddPage("about")
		sel.AddPage("services")

		errs := validateStep(entities.WizardStepWebsiteDetails, d, sel)
		if !hasField(errs, "selected_pages") {
			t.Fatalf("two pages should not be enough: %v", fieldNames(errs))
		}

		sel.AddPage("portfolio")
		if errs := validateStep(entities.WizardStepWebsiteDetails, d, sel); len(errs) != 0 {
			t.Fatalf("three pages should pass: %v", fieldNames(errs))
		}
	})

	t.Run("single-page never requires pages", func(t *testing.T) {
		if errs := validateStep(entities.WizardStepWebsiteDetails, validDraft(), entities.NewSelectionSet()); hasField(errs, "selected_pages") {
			t.Fatalf("page count must not gate a single-page site")
		}
	})

	t.Run("short audience and purpose", func(t *testing.T) {
		d := validDraft()
		d.TargetAudience = "four"
		d.Purpose = "too short"
		errs := validateStep(entities.WizardStepWebsiteDetails, d, entities.NewSelectionSet())
		if !hasField(errs, "target_audience") || !hasField(errs, "purpose") {
			t.Fatalf("expected both length failures: %v", fieldNames(errs))
		}
	})
}

func TestValidateStep_DesignPreferences(t *testing.T) {
	d := validDraft()
	d.ColorPalette = "  "
	errs := validateStep(entities.WizardStepDesignPreferences, d, entities.NewSelectionSet())
	if !hasField(errs, "color_palette") {
		t.Fatalf("blank palette should fail: %v", fieldNames(errs))
	}

	if errs := validateStep(entities.WizardStepDesignPreferences, validDraft(), entities.NewSelectionSet()); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", fieldNames(errs))
	}
}

func TestValidateStep_SpecialRequests(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		valid bool
	}{
		{"below minimum", 9, false},
		{"at minimum", 10, true},
		{"at maximum", 1000, true},
		{"above maximum", 1001, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			d.KnowledgeText = strings.Repeat("a", tc.n)
			errs := validateStep(entities.WizardStepSpecialRequests, d, entities.NewSelectionSet())
			if tc.valid && len(errs) != 0 {
				t.Fatalf("%d characters should pass: %v", tc.n, fieldNames(errs))
			}
			if !tc.valid && !hasField(errs, "knowledge_text") {
				t.Fatalf("%d characters should fail", tc.n)
			}
		})
	}
}

func TestValidateStep_UngatedSteps(t *testing.T) {
	empty := &entities.OrderDraft{}
	for _, step := range []int{entities.WizardStepFeatures, entities.WizardStepSummary} {
		if errs := validateStep(step, empty, entities.NewSelectionSet()); len(errs) != 0 {
			t.Fatalf("step %d must never gate: %v", step, fieldNames(errs))
		}
	}
}
