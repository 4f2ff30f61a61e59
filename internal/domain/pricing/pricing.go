// Package pricing derives the total price of an in-progress order from
// the draft and the current selection set.
package pricing

import (
	"webatelier/internal/domain/catalog"
	"webatelier/internal/domain/entities"
)

// Total computes the order total. It is pure: same draft and selection
// always yield the same price.
//
// Rules:
//   - base price by website type (single-page default when unset)
//   - plus the sum of selected feature prices
//   - plus, for multi-page only, the sum of selected page prices.
//     Page selections never contribute to a single-page total.
//
// Unknown page ids contribute 0; the selection layer rejects them
// before they can get here.
func Total(draft *entities.OrderDraft, selection *entities.SelectionSet) float64 {
	base := catalog.PriceSinglePage
	if draft.WebsiteType == entities.WebsiteTypeMultiPage {
		base = catalog.PriceMultiPage
	}

	total := base
	for _, f := range selection.Features() {
		total += f.Price
	}

	if draft.WebsiteType == entities.WebsiteTypeMultiPage {
		for _, id := range selection.PageIDs() {
			if page, ok := catalog.PageOptionByID(id); ok {
				total += page.Price
			}
		}
	}
	return total
}

// Refresh recomputes the total and, when it differs from the cached
// one, syncs draft.TotalPrice and draft.SelectedPages to the selection
// snapshot so the draft is a complete submission payload. Calling it
// twice with no intervening mutation is a no-op the second time.
//
// Returns whether the draft changed.
func Refresh(draft *entities.OrderDraft, selection *entities.SelectionSet) bool {
	total := Total(draft, selection)
	pages := selection.PageIDs()

	if draft.TotalPrice == total && equalPages(draft.SelectedPages, pages) {
		return false
	}
	draft.TotalPrice = total
	draft.SelectedPages = pages
	return true
}

func equalPages(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
