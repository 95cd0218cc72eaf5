package handlers

import (
	"errors"
	"net/http"

	"travelbook/models"
	"travelbook/services/wizard"
	"travelbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WizardHandler exposes the booking wizard over HTTP.
type WizardHandler struct {
	Svc wizard.WizardService
}

func NewWizardHandler(svc wizard.WizardService) *WizardHandler {
	return &WizardHandler{Svc: svc}
}

// userContext builds the explicit session context from the authenticated
// caller set by the auth middleware.
func userContext(c *gin.Context) models.UserContext {
	return models.UserContext{
		UserID: c.GetString("userID"),
		Email:  c.GetString("userEmail"),
	}
}

// wizardError maps service rejections onto HTTP statuses: guard rejections
// are 400, wrong-step actions 409, missing sessions 404, the rest 500.
func (h *WizardHandler) wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case wizard.IsValidationError(err):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", err.Error())
	case wizard.IsTransitionError(err):
		utils.JSONError(c, http.StatusConflict, "action not allowed at this step", err.Error())
	default:
		getLogger(c).Error("wizard request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "booking wizard error", err.Error())
	}
}

// StartSession creates a new wizard session for the caller.
func (h *WizardHandler) StartSession(c *gin.Context) {
	session, err := h.Svc.StartSession(c.Request.Context(), userContext(c))
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

// Search submits the search form and returns the session with fresh results.
func (h *WizardHandler) Search(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var query models.SearchQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.Search(c.Request.Context(), sessionID, query)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Select picks one offering from the results and opens the details step.
func (h *WizardHandler) Select(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		OfferingID string `json:"offeringId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.Select(c.Request.Context(), sessionID, input.OfferingID)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitDetails submits traveler details and advances to review.
func (h *WizardHandler) SubmitDetails(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input wizard.DetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Svc.SubmitDetails(c.Request.Context(), sessionID, input)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Confirm finalizes the booking from the review step.
func (h *WizardHandler) Confirm(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		TermsAccepted bool `json:"termsAccepted"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmation, err := h.Svc.Confirm(c.Request.Context(), sessionID, input.TermsAccepted)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// Back steps the wizard one step backwards.
func (h *WizardHandler) Back(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Reset starts a fresh search after a successful booking.
func (h *WizardHandler) Reset(c *gin.Context) {
	sessionID := c.Param("sessionID")
	session, err := h.Svc.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSession discards an abandoned wizard session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		h.wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}
