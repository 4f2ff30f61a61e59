package entities

import "time"

// Wizard step indexes. Steps are 1-based; WizardStepCount is the
// summary step where submission becomes possible.
const (
	WizardStepPersonalInfo      = 1
	WizardStepWebsiteDetails    = 2
	WizardStepDesignPreferences = 3
	WizardStepFeatures          = 4
	WizardStepSpecialRequests   = 5
	WizardStepSummary           = 6

	WizardStepCount = 6
)

// WizardSession is the state of one in-progress order wizard. It is a
// pure data model: step index, draft and selection, plus the
// single-flight submission flag. Locking and step gating live in the
// wizard usecase, which is the session's single owner.

type WizardSession struct {
	ID        string
	Step      int
	Draft     *OrderDraft
	Selection *SelectionSet
	CreatedAt time.Time
	UpdatedAt time.Time

	// Submitting guards against concurrent submits of one session.
	Submitting bool
}

func NewWizardSession(id string, now time.Time) *WizardSession {
	return &WizardSession{
		ID:        id,
		Step:      WizardStepPersonalInfo,
		Draft:     &OrderDraft{},
		Selection: NewSelectionSet(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
