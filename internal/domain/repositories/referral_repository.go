package repositories

import (
	"context"

	"tradedesk.backend/internal/domain/entities"
)

// ReferralRepository defines referral data operations
type ReferralRepository interface {
	Create(ctx context.Context, referral *entities.Referral) error
	GetByID(ctx context.Context, id string) (*entities.Referral, error)
	List(ctx context.Context) ([]*entities.Referral, error)
	Update(ctx context.Context, referral *entities.Referral) error
	Delete(ctx context.Context, id string) error
}
