package request

import (
	"encoding/json"
	"testing"

	"webatelier/internal/domain/entities"
)

func TestDraftUpdateRequest_ToPatch(t *testing.T) {
	t.Run("absent fields stay nil", func(t *testing.T) {
		var r DraftUpdateRequest
		if err := json.Unmarshal([]byte(`{"customer_name":"Ana"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := r.ToPatch()
		if p.CustomerName == nil || *p.CustomerName != "Ana" {
			t.Fatalf("unexpected patch: %+v", p)
		}
		if p.CustomerSurname != nil || p.WebsiteType != nil {
			t.Fatalf("absent fields must stay nil: %+v", p)
		}
	})

	t.Run("explicit empty string is kept", func(t *testing.T) {
		var r DraftUpdateRequest
		if err := json.Unmarshal([]byte(`{"website_name":""}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := r.ToPatch()
		if p.WebsiteName == nil || *p.WebsiteName != "" {
			t.Fatalf("explicit empty value must survive: %+v", p)
		}
	})

	t.Run("website type converts", func(t *testing.T) {
		var r DraftUpdateRequest
		if err := json.Unmarshal([]byte(`{"website_type":"multi-page"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		p := r.ToPatch()
		if p.WebsiteType == nil || *p.WebsiteType != entities.WebsiteTypeMultiPage {
			t.Fatalf("unexpected patch: %+v", p)
		}
	})
}
