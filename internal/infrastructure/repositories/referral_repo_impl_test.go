package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
)

func TestReferralRepository_FullFlow(t *testing.T) {
	db := newMigratedDB(t)
	repo := NewReferralRepository(db)
	ctx := context.Background()

	ref := &entities.Referral{ID: "REF1", Referrer: "Ravi", CountOfReferrals: 4, CommissionEarned: 1250.5, Status: entities.ReferralStatusActive}
	require.NoError(t, repo.Create(ctx, ref))

	got, err := repo.GetByID(ctx, "REF1")
	require.NoError(t, err)
	require.Equal(t, 1250.5, got.CommissionEarned)

	ref.CountOfReferrals = 5
	ref.Status = entities.ReferralStatusInactive
	require.NoError(t, repo.Update(ctx, ref))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].CountOfReferrals)
	require.Equal(t, entities.ReferralStatusInactive, items[0].Status)

	require.NoError(t, repo.Delete(ctx, "REF1"))
	require.ErrorIs(t, repo.Delete(ctx, "REF1"), domainerrors.ErrNotFound)
}
