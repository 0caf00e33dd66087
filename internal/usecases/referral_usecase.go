package usecases

import (
	"context"
	"strings"

	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/domain/repositories"
)

// ReferralUsecase manages referrers and their commission
type ReferralUsecase struct {
	repo      repositories.ReferralRepository
	confirmer *Confirmer
}

func NewReferralUsecase(repo repositories.ReferralRepository, confirmer *Confirmer) *ReferralUsecase {
	return &ReferralUsecase{repo: repo, confirmer: confirmer}
}

func (u *ReferralUsecase) List(ctx context.Context) ([]*entities.Referral, error) {
	return u.repo.List(ctx)
}

func (u *ReferralUsecase) Get(ctx context.Context, id string) (*entities.Referral, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *ReferralUsecase) Create(ctx context.Context, input *entities.ReferralInput) (*entities.Referral, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	r := &entities.Referral{ID: newRecordID(ReferralIDPrefix)}
	applyReferralInput(r, input)
	if err := u.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *ReferralUsecase) Update(ctx context.Context, id string, input *entities.ReferralInput) (*entities.Referral, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyReferralInput(r, input)
	if err := u.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (u *ReferralUsecase) RequestDelete(ctx context.Context, id string) (*entities.DeleteConfirmation, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.confirmer.Request(ctx, ResourceReferrals, id, "the referral of "+r.Referrer)
}

func (u *ReferralUsecase) Delete(ctx context.Context, id, token string) error {
	if err := u.confirmer.Confirm(ctx, ResourceReferrals, id, token); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func applyReferralInput(r *entities.Referral, input *entities.ReferralInput) {
	r.Referrer = strings.TrimSpace(input.Referrer)
	r.CountOfReferrals = input.CountOfReferrals
	r.CommissionEarned = input.CommissionEarned
	r.Status = entities.ReferralStatus(input.ReferralStatus)
}
