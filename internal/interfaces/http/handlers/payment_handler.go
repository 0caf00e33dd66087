package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentUsecase *usecases.PaymentUsecase
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase *usecases.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// ListPayments lists payments
// GET /api/v1/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	items, err := h.paymentUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// GetPayment gets one payment
// GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	item, err := h.paymentUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// CreatePayment records a payment. Wrapped by IdempotencyMiddleware.
// POST /api/v1/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input entities.PaymentInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.paymentUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// UpdatePayment edits a payment
// PUT /api/v1/payments/:id
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	var input entities.PaymentInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.paymentUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// RequestDeletePayment issues the confirmation for a delete
// POST /api/v1/payments/:id/delete-request
func (h *PaymentHandler) RequestDeletePayment(c *gin.Context) {
	confirmation, err := h.paymentUsecase.RequestDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, confirmation)
}

// DeletePayment removes a payment once the delete was confirmed
// DELETE /api/v1/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	if err := h.paymentUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetHeader(ConfirmTokenHeader)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Payment deleted"})
}
