package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// IndicatorHandler handles indicator endpoints
type IndicatorHandler struct {
	indicatorUsecase *usecases.IndicatorUsecase
}

// NewIndicatorHandler creates a new indicator handler
func NewIndicatorHandler(indicatorUsecase *usecases.IndicatorUsecase) *IndicatorHandler {
	return &IndicatorHandler{indicatorUsecase: indicatorUsecase}
}

// ListIndicators lists indicators
// GET /api/v1/indicators
func (h *IndicatorHandler) ListIndicators(c *gin.Context) {
	items, err := h.indicatorUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetIndicator gets one indicator
// GET /api/v1/indicators/:id
func (h *IndicatorHandler) GetIndicator(c *gin.Context) {
	item, err := h.indicatorUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreateIndicator records a new indicator
// POST /api/v1/indicators
func (h *IndicatorHandler) CreateIndicator(c *gin.Context) {
	var input entities.IndicatorInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.indicatorUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdateIndicator edits an indicator
// PUT /api/v1/indicators/:id
func (h *IndicatorHandler) UpdateIndicator(c *gin.Context) {
	var input entities.IndicatorInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.indicatorUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// RequestDeleteIndicator issues the confirmation for a delete
// POST /api/v1/indicators/:id/delete-request
func (h *IndicatorHandler) RequestDeleteIndicator(c *gin.Context) {
	confirmation, err := h.indicatorUsecase.RequestDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, confirmation)
}

// DeleteIndicator removes an indicator once the delete was confirmed
// DELETE /api/v1/indicators/:id
func (h *IndicatorHandler) DeleteIndicator(c *gin.Context) {
	if err := h.indicatorUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetHeader(ConfirmTokenHeader)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Indicator deleted"})
}
