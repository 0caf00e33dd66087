package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// SubscriberHandler handles subscriber endpoints
type SubscriberHandler struct {
	subscriberUsecase *usecases.SubscriberUsecase
}

// NewSubscriberHandler creates a new subscriber handler
func NewSubscriberHandler(subscriberUsecase *usecases.SubscriberUsecase) *SubscriberHandler {
	return &SubscriberHandler{subscriberUsecase: subscriberUsecase}
}

// ListSubscribers lists subscribers, optionally narrowed by kind and status
// GET /api/v1/subscribers?kind=paid|demo&status=
func (h *SubscriberHandler) ListSubscribers(c *gin.Context) {
	filter := entities.SubscriberFilter{
		Kind:   entities.SubscriberKind(c.Query("kind")),
		Status: entities.SubscriberStatus(c.Query("status")),
	}
	switch filter.Kind {
	case "", entities.SubscriberKindPaid, entities.SubscriberKindDemo:
	default:
		response.Error(c, domainerrors.BadRequest("kind must be one of: paid, demo"))
		return
	}

	subs, err := h.subscriberUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": subs})
}

// GetSubscriber gets one subscriber
// GET /api/v1/subscribers/:id
func (h *SubscriberHandler) GetSubscriber(c *gin.Context) {
	sub, err := h.subscriberUsecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

// CreateSubscriber adds a subscriber
// POST /api/v1/subscribers
func (h *SubscriberHandler) CreateSubscriber(c *gin.Context) {
	var input entities.SubscriberInput
	if !bindJSON(c, &input) {
		return
	}

	sub, err := h.subscriberUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

// UpdateSubscriber edits a subscriber
// PUT /api/v1/subscribers/:id
func (h *SubscriberHandler) UpdateSubscriber(c *gin.Context) {
	var input entities.SubscriberInput
	if !bindJSON(c, &input) {
		return
	}

	sub, err := h.subscriberUsecase.Update(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sub)
}

// RequestDeleteSubscriber issues the confirmation for a delete
// POST /api/v1/subscribers/:id/delete-request
func (h *SubscriberHandler) RequestDeleteSubscriber(c *gin.Context) {
	confirmation, err := h.subscriberUsecase.RequestDelete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, confirmation)
}

// DeleteSubscriber removes a subscriber once the delete was confirmed
// DELETE /api/v1/subscribers/:id
func (h *SubscriberHandler) DeleteSubscriber(c *gin.Context) {
	if err := h.subscriberUsecase.Delete(c.Request.Context(), c.Param("id"), c.GetHeader(ConfirmTokenHeader)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Subscriber deleted"})
}
