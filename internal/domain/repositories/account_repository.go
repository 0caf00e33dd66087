package repositories

import (
	"context"

	"github.com/google/uuid"
	"tradedesk.backend/internal/domain/entities"
)

// AccountRepository defines account data operations
type AccountRepository interface {
	// Create returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateTheme(ctx context.Context, id uuid.UUID, theme entities.Theme) error
	Count(ctx context.Context) (int64, error)
}
