package repositories

import (
	"context"
	"time"

	"tradedesk.backend/internal/domain/entities"
)

// SubscriberRepository defines subscriber data operations
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entities.Subscriber) error
	GetByID(ctx context.Context, id string) (*entities.Subscriber, error)
	List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error)
	Update(ctx context.Context, subscriber *entities.Subscriber) error
	Delete(ctx context.Context, id string) error
	GetExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entities.Subscriber, error)
	ExpireSubscribers(ctx context.Context, ids []string) error
}
