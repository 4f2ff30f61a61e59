package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"webatelier/internal/domain/catalog"
	"webatelier/internal/domain/entities"
	"webatelier/internal/domain/pricing"
	"webatelier/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrUnknownFeature   = errors.New("unknown feature id")
	ErrUnknownPage      = errors.New("unknown page id")
	ErrNotAtSummaryStep = errors.New("submission is only allowed at the summary step")
	ErrSubmitInFlight   = errors.New("a submission is already in flight for this session")
	ErrOrderNotCreated  = errors.New("order could not be created")
)

// SessionState is a read-only snapshot of a wizard session, safe to
// hand to the HTTP layer.
type SessionState struct {
	ID               string
	Step             int
	TotalSteps       int
	Draft            entities.OrderDraft
	SelectedFeatures []entities.Feature
	SelectedPages    []string
}

// IWizardUseCase sequences the six-step order wizard.
//
// Behavior contract:
//   - Next is gated on the active step's validity and refreshes the
//     price as part of the transition.
//   - Prev is never gated.
//   - Submit is only reachable at the summary step and runs the
//     submission pipeline: primary create, then best-effort mirror
//     write and customer upsert.

type IWizardUseCase interface {
	StartSession(ctx context.Context, sessionToken string) (SessionState, error)
	GetSession(ctx context.Context, id string) (SessionState, error)
	UpdateDraft(ctx context.Context, id string, patch entities.DraftPatch) (SessionState, error)
	AddFeature(ctx context.Context, id, featureID string) (SessionState, error)
	RemoveFeature(ctx context.Context, id, featureID string) (SessionState, error)
	AddPage(ctx context.Context, id, pageID string) (SessionState, error)
	RemovePage(ctx context.Context, id, pageID string) (SessionState, error)
	Next(ctx context.Context, id string) (SessionState, error)
	Prev(ctx context.Context, id string) (SessionState, error)
	Submit(ctx context.Context, id string) (entities.Order, error)
}

type WizardUseCase struct {
	orders   interfaces.IOrderRepository
	mirror   interfaces.IOrderMirror
	users    interfaces.IUserRepository
	identity interfaces.IIdentityProvider

	mu       sync.Mutex
	sessions map[string]*entities.WizardSession
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(
	orders interfaces.IOrderRepository,
	mirror interfaces.IOrderMirror,
	users interfaces.IUserRepository,
	identity interfaces.IIdentityProvider,
) *WizardUseCase {
	return &WizardUseCase{
		orders:   orders,
		mirror:   mirror,
		users:    users,
		identity: identity,
		sessions: make(map[string]*entities.WizardSession),
	}
}

// StartSession creates a fresh session at step 1 with an empty draft
// and selection. When a session token resolves through the identity
// collaborator, the customer fields are prefilled; resolution failures
// degrade to an empty draft.
func (u *WizardUseCase) StartSession(ctx context.Context, sessionToken string) (SessionState, error) {
	now := time.Now().UTC()
	s := entities.NewWizardSession(uuid.NewString(), now)

	if token := strings.TrimSpace(sessionToken); token != "" && u.identity != nil {
		id, err := u.identity.Resolve(ctx, token)
		if err != nil {
			log.Printf("[wizard][usecase] identity resolve failed session_id=%s err=%v", s.ID, err)
		} else {
			s.Draft.CustomerName = id.Name
			s.Draft.CustomerSurname = id.Surname
			s.Draft.CustomerEmail = id.Email
		}
	}

	pricing.Refresh(s.Draft, s.Selection)

	u.mu.Lock()
	u.sessions[s.ID] = s
	u.mu.Unlock()

	log.Printf("[wizard][usecase] session started session_id=%s", s.ID)
	return snapshot(s), nil
}

func (u *WizardUseCase) GetSession(_ context.Context, id string) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	return snapshot(s), nil
}

// UpdateDraft shallow-merges the patch into the draft. No validation
// happens here; the step gate validates on Next.
func (u *WizardUseCase) UpdateDraft(_ context.Context, id string, patch entities.DraftPatch) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	s.Draft.Apply(patch)
	s.UpdatedAt = time.Now().UTC()
	return snapshot(s), nil
}

func (u *WizardUseCase) AddFeature(_ context.Context, id, featureID string) (SessionState, error) {
	feature, ok := catalog.FeatureByID(strings.TrimSpace(featureID))
	if !ok {
		return SessionState{}, ErrUnknownFeature
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	if s.Selection.AddFeature(feature) {
		s.UpdatedAt = time.Now().UTC()
	}
	return snapshot(s), nil
}

func (u *WizardUseCase) RemoveFeature(_ context.Context, id, featureID string) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	if s.Selection.RemoveFeature(strings.TrimSpace(featureID)) {
		s.UpdatedAt = time.Now().UTC()
	}
	return snapshot(s), nil
}

func (u *WizardUseCase) AddPage(_ context.Context, id, pageID string) (SessionState, error) {
	if _, ok := catalog.PageOptionByID(strings.TrimSpace(pageID)); !ok {
		return SessionState{}, ErrUnknownPage
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	if s.Selection.AddPage(strings.TrimSpace(pageID)) {
		s.UpdatedAt = time.Now().UTC()
	}
	return snapshot(s), nil
}

func (u *WizardUseCase) RemovePage(_ context.Context, id, pageID string) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	if s.Selection.RemovePage(strings.TrimSpace(pageID)) {
		s.UpdatedAt = time.Now().UTC()
	}
	return snapshot(s), nil
}

// Next advances to the following step. The active step must report
// itself valid; the price is refreshed as part of the transition so it
// reflects the draft the customer is about to review.
func (u *WizardUseCase) Next(_ context.Context, id string) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}

	if fields := validateStep(s.Step, s.Draft, s.Selection); len(fields) > 0 {
		return SessionState{}, &StepInvalidError{Step: s.Step, Fields: fields}
	}

	pricing.Refresh(s.Draft, s.Selection)
	if s.Step < entities.WizardStepCount {
		s.Step++
	}
	s.UpdatedAt = time.Now().UTC()
	return snapshot(s), nil
}

// Prev steps back. Backward navigation is never blocked by validity;
// at step 1 it is a no-op.
func (u *WizardUseCase) Prev(_ context.Context, id string) (SessionState, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionState{}, err
	}
	if s.Step > entities.WizardStepPersonalInfo {
		s.Step--
		s.UpdatedAt = time.Now().UTC()
	}
	return snapshot(s), nil
}

// Submit runs the submission pipeline for a session sitting at the
// summary step:
//
//  1. refresh the price and freeze the draft into an Order with
//     status=pending and assigned id/timestamps
//  2. create it in the primary backend; any failure propagates and the
//     session stays intact for a manual retry
//  3. on success, mirror the record and upsert the customer,
//     best-effort, logged, never surfaced
//  4. clear the session.
//
// A per-session single-flight flag rejects concurrent submits. There
// is no dedup key: a retry after a timed-out primary write can create
// a duplicate order.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (entities.Order, error) {
	u.mu.Lock()
	s, err := u.session(id)
	if err != nil {
		u.mu.Unlock()
		return entities.Order{}, err
	}
	if s.Step != entities.WizardStepSummary {
		u.mu.Unlock()
		return entities.Order{}, ErrNotAtSummaryStep
	}
	if s.Submitting {
		u.mu.Unlock()
		return entities.Order{}, ErrSubmitInFlight
	}

	pricing.Refresh(s.Draft, s.Selection)
	order := buildOrder(s)
	s.Submitting = true
	u.mu.Unlock()

	log.Printf("[wizard][usecase] submit start session_id=%s order_id=%s total=%.2f", id, order.ID, order.TotalPrice)

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		log.Printf("[wizard][usecase] primary create failed session_id=%s order_id=%s err=%v", id, order.ID, err)
		u.mu.Lock()
		s.Submitting = false
		u.mu.Unlock()
		return entities.Order{}, fmt.Errorf("%w: %v", ErrOrderNotCreated, err)
	}

	if u.mirror != nil {
		if err := u.mirror.Write(ctx, created); err != nil {
			log.Printf("[wizard][usecase] mirror write failed order_id=%s err=%v", created.ID, err)
		}
	}
	if u.users != nil {
		identity := entities.Identity{
			Name:    created.CustomerName,
			Surname: created.CustomerSurname,
			Email:   created.CustomerEmail,
		}
		if _, err := u.users.RecordOrder(ctx, identity, created.Profession, created.TotalPrice); err != nil {
			log.Printf("[wizard][usecase] user upsert failed order_id=%s err=%v", created.ID, err)
		}
	}

	u.mu.Lock()
	delete(u.sessions, id)
	u.mu.Unlock()

	log.Printf("[wizard][usecase] submit success session_id=%s order_id=%s", id, created.ID)
	return created, nil
}

// session looks up a live session. Callers must hold u.mu.
func (u *WizardUseCase) session(id string) (*entities.WizardSession, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	s, ok := u.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func snapshot(s *entities.WizardSession) SessionState {
	draft := *s.Draft
	draft.SelectedPages = append([]string(nil), s.Draft.SelectedPages...)
	return SessionState{
		ID:               s.ID,
		Step:             s.Step,
		TotalSteps:       entities.WizardStepCount,
		Draft:            draft,
		SelectedFeatures: s.Selection.Features(),
		SelectedPages:    s.Selection.PageIDs(),
	}
}

func buildOrder(s *entities.WizardSession) entities.Order {
	now := time.Now().UTC()
	return entities.Order{
		ID:                 uuid.NewString(),
		CustomerName:       s.Draft.CustomerName,
		CustomerSurname:    s.Draft.CustomerSurname,
		CustomerEmail:      s.Draft.CustomerEmail,
		Profession:         s.Draft.Profession,
		WebsiteName:        s.Draft.WebsiteName,
		WebsiteType:        s.Draft.WebsiteType,
		TargetAudience:     s.Draft.TargetAudience,
		Purpose:            s.Draft.Purpose,
		ColorPalette:       s.Draft.ColorPalette,
		KnowledgeText:      s.Draft.KnowledgeText,
		AdditionalFeatures: s.Selection.FeatureNames(),
		SelectedPages:      s.Selection.PageIDs(),
		TotalPrice:         s.Draft.TotalPrice,
		Status:             entities.OrderStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
