package entities

import "sort"

// SelectionSet tracks the optional features and pages chosen for the
// in-progress order. Membership is by id, duplicates are impossible by
// construction, and feature insertion order is preserved for display.
//
// Adding or removing never recalculates the price; recomputation is a
// distinct caller responsibility (the wizard triggers it on step
// transitions).

type SelectionSet struct {
	features   []Feature
	featureIDs map[string]struct{}
	pageIDs    map[string]struct{}
}

func NewSelectionSet() *SelectionSet {
	return &SelectionSet{
		featureIDs: make(map[string]struct{}),
		pageIDs:    make(map[string]struct{}),
	}
}

// AddFeature inserts the feature if absent. Returns false on the
// idempotent no-op.
func (s *SelectionSet) AddFeature(f Feature) bool {
	if _, ok := s.featureIDs[f.ID]; ok {
		return false
	}
	s.featureIDs[f.ID] = struct{}{}
	s.features = append(s.features, f)
	return true
}

// RemoveFeature removes by id if present. Returns false on the
// idempotent no-op.
func (s *SelectionSet) RemoveFeature(id string) bool {
	if _, ok := s.featureIDs[id]; !ok {
		return false
	}
	delete(s.featureIDs, id)
	for i, f := range s.features {
		if f.ID == id {
			s.features = append(s.features[:i], s.features[i+1:]...)
			break
		}
	}
	return true
}

func (s *SelectionSet) AddPage(id string) bool {
	if _, ok := s.pageIDs[id]; ok {
		return false
	}
	s.pageIDs[id] = struct{}{}
	return true
}

func (s *SelectionSet) RemovePage(id string) bool {
	if _, ok := s.pageIDs[id]; !ok {
		return false
	}
	delete(s.pageIDs, id)
	return true
}

func (s *SelectionSet) HasFeature(id string) bool {
	_, ok := s.featureIDs[id]
	return ok
}

func (s *SelectionSet) HasPage(id string) bool {
	_, ok := s.pageIDs[id]
	return ok
}

// Features returns the selected features in insertion order.
func (s *SelectionSet) Features() []Feature {
	out := make([]Feature, len(s.features))
	copy(out, s.features)
	return out
}

// FeatureNames returns the selected feature names in insertion order.
func (s *SelectionSet) FeatureNames() []string {
	out := make([]string, 0, len(s.features))
	for _, f := range s.features {
		out = append(out, f.Name)
	}
	return out
}

// PageIDs returns the selected page ids, sorted for determinism.
func (s *SelectionSet) PageIDs() []string {
	out := make([]string, 0, len(s.pageIDs))
	for id := range s.pageIDs {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (s *SelectionSet) PageCount() int {
	return len(s.pageIDs)
}
