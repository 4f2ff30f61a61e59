package handlers

import (
	"errors"
	"log"
	"net/http"

	request "webatelier/internal/adapter/http/dto/request"
	response "webatelier/internal/adapter/http/dto/response"
	"webatelier/internal/usecase"
	"webatelier/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWizardPayload = pkg.NewDomainErrorSimple("INVALID_WIZARD_INPUT", "Invalid wizard payload", http.StatusBadRequest)
)

// WizardHandler drives the order wizard over HTTP: one session per
// in-progress order, mutated by the customer's form interactions.

type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// StartSession opens a fresh wizard session. The optional
// X-Session-Token header prefills the customer fields from the auth
// collaborator.
func (h *WizardHandler) StartSession(c *gin.Context) {
	state, err := h.usecase.StartSession(c.Request.Context(), c.GetHeader("X-Session-Token"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSessionState(state))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	state, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// UpdateDraft shallow-merges the provided fields into the draft.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var payload request.DraftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.UpdateDraft(c.Request.Context(), c.Param("session_id"), payload.ToPatch())
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *WizardHandler) AddFeature(c *gin.Context) {
	var payload request.FeatureSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.AddFeature(c.Request.Context(), c.Param("session_id"), payload.FeatureID)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *WizardHandler) RemoveFeature(c *gin.Context) {
	state, err := h.usecase.RemoveFeature(c.Request.Context(), c.Param("session_id"), c.Param("feature_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *WizardHandler) AddPage(c *gin.Context) {
	var payload request.PageSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWizardPayload.HTTPStatus, errInvalidWizardPayload.ToHTTPError())
		return
	}

	state, err := h.usecase.AddPage(c.Request.Context(), c.Param("session_id"), payload.PageID)
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *WizardHandler) RemovePage(c *gin.Context) {
	state, err := h.usecase.RemovePage(c.Request.Context(), c.Param("session_id"), c.Param("page_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// Next advances the wizard. A step-validation failure comes back as
// 422 with the failing fields so the form can mark them inline.
func (h *WizardHandler) Next(c *gin.Context) {
	state, err := h.usecase.Next(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		var stepErr *usecase.StepInvalidError
		if errors.As(err, &stepErr) {
			c.JSON(http.StatusUnprocessableEntity, response.FromStepInvalid(stepErr))
			return
		}
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

func (h *WizardHandler) Prev(c *gin.Context) {
	state, err := h.usecase.Prev(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionState(state))
}

// Submit runs the submission pipeline and, on success, returns the
// created order. The session is gone afterwards; on failure it is
// preserved for a manual retry.
func (h *WizardHandler) Submit(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[wizard][handler] submit start session_id=%s", sessionID)

	order, err := h.usecase.Submit(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[wizard][handler] submit failed session_id=%s err=%v", sessionID, err)
		appErr := mapWizardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[wizard][handler] submit success session_id=%s order_id=%s", sessionID, order.ID)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrUnknownFeature), errors.Is(err, usecase.ErrUnknownPage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Wizard session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotAtSummaryStep):
		return pkg.NewDomainErrorSimple("NOT_AT_SUMMARY", "Submission is only allowed from the summary step", http.StatusConflict)
	case errors.Is(err, usecase.ErrSubmitInFlight):
		return pkg.NewDomainErrorSimple("SUBMIT_IN_FLIGHT", "A submission is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotCreated):
		return pkg.NewDomainError("ORDER_NOT_CREATED", "The order could not be created, please retry", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
