package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/interfaces/http/response"
	"tradedesk.backend/internal/usecases"
)

// AssistantHandler serves the chat widget
type AssistantHandler struct {
	assistantUsecase *usecases.AssistantUsecase
}

func NewAssistantHandler(assistantUsecase *usecases.AssistantUsecase) *AssistantHandler {
	return &AssistantHandler{assistantUsecase: assistantUsecase}
}

// SendMessage asks the assistant. A failed call still answers 200 with an error entry
// in the transcript.
// POST /api/v1/assistant/messages
func (h *AssistantHandler) SendMessage(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}
	var input entities.AssistantMessageInput
	if !bindJSON(c, &input) {
		return
	}

	transcript, err := h.assistantUsecase.Send(c.Request.Context(), accountID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": transcript})
}

// GetTranscript
// GET /api/v1/assistant/messages
func (h *AssistantHandler) GetTranscript(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	transcript, err := h.assistantUsecase.List(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": transcript})
}

// ClearTranscript
// DELETE /api/v1/assistant/messages
func (h *AssistantHandler) ClearTranscript(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	if err := h.assistantUsecase.Clear(c.Request.Context(), accountID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"messages": []entities.TranscriptEntry{}})
}
