package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// ReferralHandler handles referral endpoints
type ReferralHandler struct {
	referralUsecase *usecases.ReferralUsecase
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase *usecases.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase}
}

// ListReferrals lists referrers with their counts and commission
// GET /api/v1/referrals
func (h *ReferralHandler) ListReferrals(c *gin.Context) {
	items, err := h.referralUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetReferral gets one referral
// GET /api/v1/referrals/:id
func (h *ReferralHandler) GetReferral(c *gin.Context) {
	item, err := h.referralUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreateReferral records a new referral
// POST /api/v1/referrals
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var input entities.ReferralInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.referralUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdateReferral edits a referral
// PUT /api/v1/referrals/:id
func (h *ReferralHandler) UpdateReferral(c *gin.Context) {
	var input entities.ReferralInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.referralUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// RequestDeleteReferral issues the confirmation for a delete
// POST /api/v1/referrals/:id/delete-request
func (h *ReferralHandler) RequestDeleteReferral(c *gin.Context) {
	confirmation, err := h.referralUsecase.RequestDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, confirmation)
}

// DeleteReferral removes a referral once the delete was confirmed
// DELETE /api/v1/referrals/:id
func (h *ReferralHandler) DeleteReferral(c *gin.Context) {
	if err := h.referralUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetHeader(ConfirmTokenHeader)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Referral deleted"})
}
