package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tradedesk.backend/internal/domain/entities"
)

// ViewStateStore keeps per-account table state. Get returns a zero state when nothing
// is stored.
type ViewStateStore interface {
	Get(ctx context.Context, accountID uuid.UUID, scene string) (*entities.ViewState, error)
	Save(ctx context.Context, accountID uuid.UUID, scene string, state *entities.ViewState) error
}

// ConfirmationStore holds single-use delete confirmation tokens.
type ConfirmationStore interface {
	Issue(ctx context.Context, resource, id, token string, ttl time.Duration) error
	// Consume reports whether token matches and removes it either way.
	Consume(ctx context.Context, resource, id, token string) (bool, error)
}

// PasswordResetStore holds forgot-password wizard state. Get returns ErrNotFound for
// unknown or expired ids.
type PasswordResetStore interface {
	Save(ctx context.Context, reset *entities.PasswordReset, ttl time.Duration) error
	Get(ctx context.Context, id string) (*entities.PasswordReset, error)
	Delete(ctx context.Context, id string) error
}

// TranscriptStore holds the assistant chat per account.
type TranscriptStore interface {
	Append(ctx context.Context, accountID uuid.UUID, entries ...entities.TranscriptEntry) error
	List(ctx context.Context, accountID uuid.UUID) ([]entities.TranscriptEntry, error)
	Clear(ctx context.Context, accountID uuid.UUID) error
}
