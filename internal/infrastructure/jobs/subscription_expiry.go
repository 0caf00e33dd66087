package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/pkg/logger"
	"tradedesk.backend/pkg/metrics"
)

const expiryBatchSize = 100

type subscriptionExpiryRepository interface {
	GetExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entities.Subscriber, error)
	ExpireSubscribers(ctx context.Context, ids []string) error
}

// SubscriptionExpiryJob marks Active subscribers whose expiry date has passed as Expired
type SubscriptionExpiryJob struct {
	repo     subscriptionExpiryRepository
	interval time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

func NewSubscriptionExpiryJob(repo subscriptionExpiryRepository, interval time.Duration) *SubscriptionExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}
	return &SubscriptionExpiryJob{
		repo:     repo,
		interval: interval,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
}

// Start runs one sweep immediately, then one per interval, until ctx is done or Stop is called
func (j *SubscriptionExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "Starting subscription expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.processExpiredSubscriptions(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Subscription expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			logger.Info(ctx, "Subscription expiry job stopped")
			return
		case <-ticker.C:
			j.processExpiredSubscriptions(ctx)
		}
	}
}

func (j *SubscriptionExpiryJob) Stop() {
	j.stopOnce.Do(func() { close(j.stop) })
}

// processExpiredSubscriptions drains due subscribers in batches
func (j *SubscriptionExpiryJob) processExpiredSubscriptions(ctx context.Context) int {
	now := j.now()
	total := 0
	for {
		if ctx.Err() != nil {
			return total
		}
		due, err := j.repo.GetExpiredActive(ctx, now, expiryBatchSize)
		if err != nil {
			logger.Error(ctx, "Error fetching expired subscriptions", zap.Error(err))
			return total
		}
		if len(due) == 0 {
			break
		}

		ids := make([]string, 0, len(due))
		for _, s := range due {
			ids = append(ids, s.ID)
		}
		if err := j.repo.ExpireSubscribers(ctx, ids); err != nil {
			logger.Error(ctx, "Error expiring subscriptions", zap.Error(err), zap.Int("batch", len(ids)))
			return total
		}
		total += len(ids)
		if len(due) < expiryBatchSize {
			break
		}
	}

	if total > 0 {
		metrics.ObserveExpired(total)
		logger.Info(ctx, "Expired subscriptions", zap.Int("count", total))
	}
	return total
}
