package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/internal/infrastructure/assistant"
	"tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/metrics"
)

// AssistantClient generates one reply for a prompt given prior turns
type AssistantClient interface {
	Generate(ctx context.Context, history []assistant.Turn, prompt string) (string, error)
}

// AssistantUsecase drives the chat widget
type AssistantUsecase struct {
	client      AssistantClient
	transcripts repositories.TranscriptStore
	timeout     time.Duration
}

func NewAssistantUsecase(client AssistantClient, transcripts repositories.TranscriptStore, timeout time.Duration) *AssistantUsecase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AssistantUsecase{client: client, transcripts: transcripts, timeout: timeout}
}

// Send records the message, asks the model once and records the reply. A failed
// call is recorded as an error entry, not returned.
func (u *AssistantUsecase) Send(ctx context.Context, accountID uuid.UUID, input *entities.AssistantMessageInput) ([]entities.TranscriptEntry, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	prompt := strings.TrimSpace(input.Message)

	history, err := u.transcripts.List(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := u.transcripts.Append(ctx, accountID, entities.TranscriptEntry{Role: entities.TranscriptUser, Text: prompt, At: timeNow()}); err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	reply := entities.TranscriptEntry{Role: entities.TranscriptAssistant}
	text, err := u.client.Generate(callCtx, turns(history), prompt)
	if err != nil {
		logger.Warn(ctx, "assistant call failed", zap.Error(err))
		metrics.ObserveAssistant("error")
		reply.Role = entities.TranscriptError
		reply.Text = err.Error()
	} else {
		metrics.ObserveAssistant("ok")
		reply.Text = text
	}
	reply.At = timeNow()

	if err := u.transcripts.Append(ctx, accountID, reply); err != nil {
		return nil, err
	}
	return u.transcripts.List(ctx, accountID)
}

func (u *AssistantUsecase) List(ctx context.Context, accountID uuid.UUID) ([]entities.TranscriptEntry, error) {
	return u.transcripts.List(ctx, accountID)
}

func (u *AssistantUsecase) Clear(ctx context.Context, accountID uuid.UUID) error {
	return u.transcripts.Clear(ctx, accountID)
}

// turns converts the transcript into model context. Error entries are dropped.
func turns(history []entities.TranscriptEntry) []assistant.Turn {
	out := make([]assistant.Turn, 0, len(history))
	for _, e := range history {
		switch e.Role {
		case entities.TranscriptUser:
			out = append(out, assistant.Turn{Role: "user", Text: e.Text})
		case entities.TranscriptAssistant:
			out = append(out, assistant.Turn{Role: "model", Text: e.Text})
		}
	}
	return out
}
