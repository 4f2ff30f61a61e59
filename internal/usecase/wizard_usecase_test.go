package usecase

import (
	"context"
	"errors"
	"testing"

	"webatelier/internal/domain/entities"
	mock_interfaces "webatelier/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func validPatch() entities.DraftPatch {
	wt := entities.WebsiteTypeSinglePage
	return entities.DraftPatch{
		CustomerName:    strPtr("Ana"),
		CustomerSurname: strPtr("Souza"),
		CustomerEmail:   strPtr("ana@example.com"),
		Profession:      strPtr("Photographer"),
		WebsiteName:     strPtr("Ana Photography"),
		WebsiteType:     &wt,
		TargetAudience:  strPtr("couples planning a wedding"),
		Purpose:         strPtr("showcase my portfolio and get bookings"),
		ColorPalette:    strPtr("ocean"),
		KnowledgeText:   strPtr("I have been shooting weddings for ten years."),
	}
}

// toSummary fills a valid single-page draft and walks the session to
// the summary step.
func toSummary(t *testing.T, uc *WizardUseCase, id string) {
	t.Helper()
	ctx := context.Background()
	if _, err := uc.UpdateDraft(ctx, id, validPatch()); err != nil {
		t.Fatalf("unexpected draft error: %v", err)
	}
	for i := 0; i < entities.WizardStepCount-1; i++ {
		if _, err := uc.Next(ctx, id); err != nil {
			t.Fatalf("unexpected next error at transition %d: %v", i+1, err)
		}
	}
	state, err := uc.GetSession(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Step != entities.WizardStepSummary {
		t.Fatalf("expected summary step, got %d", state.Step)
	}
}

func TestWizardUseCase_StartSession(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		state, err := uc.StartSession(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.ID == "" {
			t.Fatalf("expected generated session id")
		}
		if state.Step != entities.WizardStepPersonalInfo || state.TotalSteps != entities.WizardStepCount {
			t.Fatalf("unexpected step state: %+v", state)
		}
		if state.Draft.TotalPrice != 1999 {
			t.Fatalf("expected default single-page total, got %v", state.Draft.TotalPrice)
		}
	})

	t.Run("identity prefill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewWizardUseCase(nil, nil, nil, identity)

		identity.EXPECT().Resolve(gomock.Any(), "tok-1").Return(entities.Identity{Name: "Ana", Surname: "Souza", Email: "ana@example.com"}, nil)

		state, err := uc.StartSession(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Draft.CustomerName != "Ana" || state.Draft.CustomerSurname != "Souza" || state.Draft.CustomerEmail != "ana@example.com" {
			t.Fatalf("expected prefilled draft, got %+v", state.Draft)
		}
	})

	t.Run("identity failure degrades to empty draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityProvider(ctrl)
		uc := NewWizardUseCase(nil, nil, nil, identity)

		identity.EXPECT().Resolve(gomock.Any(), "tok-1").Return(entities.Identity{}, errors.New("redis down"))

		state, err := uc.StartSession(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("resolve failure must not fail the session: %v", err)
		}
		if state.Draft.CustomerName != "" {
			t.Fatalf("expected empty draft, got %+v", state.Draft)
		}
	})
}

func TestWizardUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		if _, err := uc.GetSession(context.Background(), "   "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		if _, err := uc.GetSession(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		state, err := uc.GetSession(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.ID != started.ID {
			t.Fatalf("unexpected state: %+v", state)
		}
	})
}

func TestWizardUseCase_UpdateDraft(t *testing.T) {
	t.Run("applies patch without validation", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")

		state, err := uc.UpdateDraft(context.Background(), started.ID, entities.DraftPatch{CustomerName: strPtr("x")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Draft.CustomerName != "x" {
			t.Fatalf("patch not applied: %+v", state.Draft)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		if _, err := uc.UpdateDraft(context.Background(), "missing", entities.DraftPatch{}); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestWizardUseCase_Selection(t *testing.T) {
	t.Run("unknown feature", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		if _, err := uc.AddFeature(context.Background(), started.ID, "nope"); !errors.Is(err, ErrUnknownFeature) {
			t.Fatalf("expected ErrUnknownFeature, got %v", err)
		}
	})

	t.Run("add feature twice keeps one", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		if _, err := uc.AddFeature(context.Background(), started.ID, "logo-design"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state, err := uc.AddFeature(context.Background(), started.ID, "logo-design")
		if err != nil {
			t.Fatalf("repeated add must not error: %v", err)
		}
		if len(state.SelectedFeatures) != 1 {
			t.Fatalf("expected 1 feature, got %d", len(state.SelectedFeatures))
		}
	})

	t.Run("remove absent feature is a no-op", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		state, err := uc.RemoveFeature(context.Background(), started.ID, "logo-design")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(state.SelectedFeatures) != 0 {
			t.Fatalf("expected empty selection, got %v", state.SelectedFeatures)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		if _, err := uc.AddPage(context.Background(), started.ID, "nope"); !errors.Is(err, ErrUnknownPage) {
			t.Fatalf("expected ErrUnknownPage, got %v", err)
		}
	})

	t.Run("pages add and remove", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		uc.AddPage(context.Background(), started.ID, "about")
		uc.AddPage(context.Background(), started.ID, "about")
		state, _ := uc.AddPage(context.Background(), started.ID, "services")
		if len(state.SelectedPages) != 2 {
			t.Fatalf("expected 2 pages, got %v", state.SelectedPages)
		}
		state, _ = uc.RemovePage(context.Background(), started.ID, "about")
		if len(state.SelectedPages) != 1 || state.SelectedPages[0] != "services" {
			t.Fatalf("unexpected pages: %v", state.SelectedPages)
		}
	})
}

func TestWizardUseCase_Next(t *testing.T) {
	t.Run("gated on the active step", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")

		_, err := uc.Next(context.Background(), started.ID)
		var stepErr *StepInvalidError
		if !errors.As(err, &stepErr) {
			t.Fatalf("expected StepInvalidError, got %v", err)
		}
		if stepErr.Step != entities.WizardStepPersonalInfo || len(stepErr.Fields) == 0 {
			t.Fatalf("unexpected step error: %+v", stepErr)
		}

		state, _ := uc.GetSession(context.Background(), started.ID)
		if state.Step != entities.WizardStepPersonalInfo {
			t.Fatalf("a gated next must not advance, got step %d", state.Step)
		}
	})

	t.Run("refreshes the price on transition", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		uc.UpdateDraft(context.Background(), started.ID, validPatch())

		state, _ := uc.AddFeature(context.Background(), started.ID, "logo-design")
		if state.Draft.TotalPrice != 1999 {
			t.Fatalf("selection alone must not reprice, got %v", state.Draft.TotalPrice)
		}

		state, err := uc.Next(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Draft.TotalPrice != 2499 {
			t.Fatalf("expected refreshed total 2499, got %v", state.Draft.TotalPrice)
		}
	})

	t.Run("caps at the summary step", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		toSummary(t, uc, started.ID)

		state, err := uc.Next(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Step != entities.WizardStepSummary {
			t.Fatalf("next at the summary must stay there, got %d", state.Step)
		}
	})
}

func TestWizardUseCase_Prev(t *testing.T) {
	t.Run("no-op at the first step", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		state, err := uc.Prev(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.Step != entities.WizardStepPersonalInfo {
			t.Fatalf("expected step 1, got %d", state.Step)
		}
	})

	t.Run("never gated", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		uc.UpdateDraft(context.Background(), started.ID, validPatch())
		if _, err := uc.Next(context.Background(), started.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Invalidate the step we are standing on, then go back.
		uc.UpdateDraft(context.Background(), started.ID, entities.DraftPatch{WebsiteName: strPtr("")})
		state, err := uc.Prev(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("prev must not validate: %v", err)
		}
		if state.Step != entities.WizardStepPersonalInfo {
			t.Fatalf("expected step 1, got %d", state.Step)
		}
	})
}

func TestWizardUseCase_Submit(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		if _, err := uc.Submit(context.Background(), " "); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("session not found", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		if _, err := uc.Submit(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("not at summary", func(t *testing.T) {
		uc := NewWizardUseCase(nil, nil, nil, nil)
		started, _ := uc.StartSession(context.Background(), "")
		if _, err := uc.Submit(context.Background(), started.ID); !errors.Is(err, ErrNotAtSummaryStep) {
			t.Fatalf("expected ErrNotAtSummaryStep, got %v", err)
		}
	})

	t.Run("success runs the whole pipeline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mirror := mock_interfaces.NewMockIOrderMirror(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWizardUseCase(orders, mirror, users, nil)

		started, _ := uc.StartSession(context.Background(), "")
		uc.AddFeature(context.Background(), started.ID, "logo-design")
		toSummary(t, uc, started.ID)

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatalf("expected generated order id")
				}
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected pending status, got %s", o.Status)
				}
				if o.TotalPrice != 2499 {
					t.Fatalf("expected total 2499, got %v", o.TotalPrice)
				}
				if len(o.AdditionalFeatures) != 1 || o.AdditionalFeatures[0] != "Logo design" {
					t.Fatalf("unexpected features: %v", o.AdditionalFeatures)
				}
				if o.CustomerEmail != "ana@example.com" {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return o, nil
			},
		)
		mirror.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().RecordOrder(gomock.Any(), entities.Identity{Name: "Ana", Surname: "Souza", Email: "ana@example.com"}, "Photographer", 2499.0).Return(entities.User{}, nil)

		order, err := uc.Submit(context.Background(), started.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID == "" {
			t.Fatalf("expected created order")
		}

		if _, err := uc.GetSession(context.Background(), started.ID); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("session must be cleared after submit, got %v", err)
		}
	})

	t.Run("mirror and upsert failures never surface", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mirror := mock_interfaces.NewMockIOrderMirror(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWizardUseCase(orders, mirror, users, nil)

		started, _ := uc.StartSession(context.Background(), "")
		toSummary(t, uc, started.ID)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		mirror.EXPECT().Write(gomock.Any(), gomock.Any()).Return(errors.New("postgres down"))
		users.EXPECT().RecordOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, errors.New("dynamo down"))

		if _, err := uc.Submit(context.Background(), started.ID); err != nil {
			t.Fatalf("best-effort failures must not fail the submit: %v", err)
		}
	})

	t.Run("primary failure keeps the session for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mirror := mock_interfaces.NewMockIOrderMirror(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWizardUseCase(orders, mirror, users, nil)

		started, _ := uc.StartSession(context.Background(), "")
		toSummary(t, uc, started.ID)

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("dynamo down"))

		_, err := uc.Submit(context.Background(), started.ID)
		if !errors.Is(err, ErrOrderNotCreated) {
			t.Fatalf("expected ErrOrderNotCreated, got %v", err)
		}

		if _, err := uc.GetSession(context.Background(), started.ID); err != nil {
			t.Fatalf("session must survive a failed submit: %v", err)
		}

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		mirror.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().RecordOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, nil)

		if _, err := uc.Submit(context.Background(), started.ID); err != nil {
			t.Fatalf("retry after a failed create must work: %v", err)
		}
	})

	t.Run("concurrent submit rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		mirror := mock_interfaces.NewMockIOrderMirror(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewWizardUseCase(orders, mirror, users, nil)

		started, _ := uc.StartSession(context.Background(), "")
		toSummary(t, uc, started.ID)

		// Re-enter Submit while the primary write is in flight; the
		// single-flight flag must bounce the second caller.
		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, o entities.Order) (entities.Order, error) {
				if _, err := uc.Submit(ctx, started.ID); !errors.Is(err, ErrSubmitInFlight) {
					t.Fatalf("expected ErrSubmitInFlight, got %v", err)
				}
				return o, nil
			},
		)
		mirror.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().RecordOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.User{}, nil)

		if _, err := uc.Submit(context.Background(), started.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
