package repositories

import (
	"context"

	"tradedesk.backend/internal/domain/entities"
)

// IndicatorRepository defines indicator data operations
type IndicatorRepository interface {
	Create(ctx context.Context, indicator *entities.Indicator) error
	GetByID(ctx context.Context, id string) (*entities.Indicator, error)
	List(ctx context.Context) ([]*entities.Indicator, error)
	Update(ctx context.Context, indicator *entities.Indicator) error
	Delete(ctx context.Context, id string) error
}
