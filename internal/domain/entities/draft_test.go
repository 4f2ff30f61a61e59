package entities

import "testing"

func TestOrderDraft_Apply(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("nil fields untouched", func(t *testing.T) {
		d := OrderDraft{CustomerName: "Ana", CustomerEmail: "ana@example.com"}
		d.Apply(DraftPatch{CustomerSurname: strPtr("Souza")})
		if d.CustomerName != "Ana" || d.CustomerEmail != "ana@example.com" {
			t.Fatalf("fields without a patch value must be preserved: %+v", d)
		}
		if d.CustomerSurname != "Souza" {
			t.Fatalf("patched field not applied: %+v", d)
		}
	})

	t.Run("set fields overwrite including to empty", func(t *testing.T) {
		d := OrderDraft{WebsiteName: "old name", Purpose: "old purpose"}
		d.Apply(DraftPatch{WebsiteName: strPtr("")})
		if d.WebsiteName != "" {
			t.Fatalf("explicit empty value must overwrite, got %q", d.WebsiteName)
		}
		if d.Purpose != "old purpose" {
			t.Fatalf("unpatched field changed: %+v", d)
		}
	})

	t.Run("website type", func(t *testing.T) {
		wt := WebsiteTypeMultiPage
		d := OrderDraft{}
		d.Apply(DraftPatch{WebsiteType: &wt})
		if d.WebsiteType != WebsiteTypeMultiPage {
			t.Fatalf("expected multi-page, got %q", d.WebsiteType)
		}
	})

	t.Run("derived fields never patched", func(t *testing.T) {
		d := OrderDraft{TotalPrice: 1999, SelectedPages: []string{"about"}}
		d.Apply(DraftPatch{CustomerName: strPtr("Ana")})
		if d.TotalPrice != 1999 || len(d.SelectedPages) != 1 {
			t.Fatalf("derived fields must survive a patch: %+v", d)
		}
	})
}
