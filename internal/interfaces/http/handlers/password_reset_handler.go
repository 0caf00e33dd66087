package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// PasswordResetHandler walks the three-step forgot-password wizard
type PasswordResetHandler struct {
	resetUsecase *usecases.PasswordResetUsecase
}

func NewPasswordResetHandler(resetUsecase *usecases.PasswordResetUsecase) *PasswordResetHandler {
	return &PasswordResetHandler{resetUsecase: resetUsecase}
}

// Start looks up the account by email
// POST /api/v1/auth/password-reset
func (h *PasswordResetHandler) Start(c *gin.Context) {
	var input entities.ResetStartInput
	if !bindJSON(c, &input) {
		return
	}

	status, err := h.resetUsecase.Start(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, status)
}

// Verify checks the security answer
// POST /api/v1/auth/password-reset/:id/verify
func (h *PasswordResetHandler) Verify(c *gin.Context) {
	var input entities.ResetVerifyInput
	if !bindJSON(c, &input) {
		return
	}

	status, err := h.resetUsecase.Verify(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, status)
}

// Complete sets the new password
// POST /api/v1/auth/password-reset/:id/complete
func (h *PasswordResetHandler) Complete(c *gin.Context) {
	var input entities.ResetCompleteInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.resetUsecase.Complete(c.Request.Context(), c.Param("id"), &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated. Sign in with your new password."})
}
