package seed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
	"tradedesk.backend/internal/infrastructure/repositories"
)

func newSeedRepos(t *testing.T) (*gorm.DB, Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db, Repositories{
		Subscribers: repositories.NewSubscriberRepository(db),
		Payments:    repositories.NewPaymentRepository(db),
		Referrals:   repositories.NewReferralRepository(db),
		Indicators:  repositories.NewIndicatorRepository(db),
	}
}

func TestLoad_InsertsOnceAndIsIdempotent(t *testing.T) {
	db, repos := newSeedRepos(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	sum, err := Load(ctx, repositories.NewUnitOfWork(db), repos, now)
	require.NoError(t, err)
	require.Equal(t, len(subscriberRows), sum.Subscribers)
	require.Equal(t, len(paymentRows), sum.Payments)
	require.Equal(t, len(referralRows), sum.Referrals)
	require.Equal(t, len(indicatorRows), sum.Indicators)

	demo, err := repos.Subscribers.List(ctx, entities.SubscriberFilter{Kind: entities.SubscriberKindDemo})
	require.NoError(t, err)
	require.Len(t, demo, 4)

	again, err := Load(ctx, repositories.NewUnitOfWork(db), repos, now)
	require.NoError(t, err)
	require.True(t, again.Skipped)

	all, err := repos.Subscribers.List(ctx, entities.SubscriberFilter{})
	require.NoError(t, err)
	require.Len(t, all, len(subscriberRows))
}

func TestLoad_RollsBackOnFailure(t *testing.T) {
	db, repos := newSeedRepos(t)
	ctx := context.Background()

	prev := newID
	newID = func(prefix string) string {
		if prefix == "IND" {
			return "IND-DUP"
		}
		return prev(prefix)
	}
	t.Cleanup(func() { newID = prev })

	_, err := Load(ctx, repositories.NewUnitOfWork(db), repos, time.Now().UTC())
	require.Error(t, err)

	all, err := repos.Subscribers.List(ctx, entities.SubscriberFilter{})
	require.NoError(t, err)
	require.Empty(t, all)
}
