package usecases

import (
	"context"
	"strings"

	"github.com/volatiletech/null/v8"
	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
)

// SubscriberUsecase manages TradingView subscribers
type SubscriberUsecase struct {
	repo      repositories.SubscriberRepository
	confirmer *Confirmer
}

func NewSubscriberUsecase(repo repositories.SubscriberRepository, confirmer *Confirmer) *SubscriberUsecase {
	return &SubscriberUsecase{repo: repo, confirmer: confirmer}
}

// List returns subscribers newest first with remaining days computed for today.
func (u *SubscriberUsecase) List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	subs, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	for _, s := range subs {
		s.Refresh(now)
	}
	return subs, nil
}

func (u *SubscriberUsecase) Get(ctx context.Context, id string) (*entities.Subscriber, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Refresh(timeNow())
	return s, nil
}

// Create adds a subscriber joined today. Status defaults to Active.
func (u *SubscriberUsecase) Create(ctx context.Context, input *entities.SubscriberInput) (*entities.Subscriber, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := timeNow()
	s := &entities.Subscriber{
		ID:         newRecordID(SubscriberIDPrefix),
		JoinedDate: now,
		Status:     entities.SubscriberStatusActive,
	}
	if err := applySubscriberInput(s, input); err != nil {
		return nil, err
	}
	s.Refresh(now)

	if err := u.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the editable fields of a subscriber
func (u *SubscriberUsecase) Update(ctx context.Context, id string, input *entities.SubscriberInput) (*entities.Subscriber, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applySubscriberInput(s, input); err != nil {
		return nil, err
	}
	s.Refresh(timeNow())

	if err := u.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// RequestDelete starts a two-step delete
func (u *SubscriberUsecase) RequestDelete(ctx context.Context, id string) (*entities.DeleteConfirmation, error) {
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.confirmer.Request(ctx, ResourceSubscribers, id, s.Name)
}

// Delete removes a subscriber once the confirmation token checks out
func (u *SubscriberUsecase) Delete(ctx context.Context, id, token string) error {
	if err := u.confirmer.Confirm(ctx, ResourceSubscribers, id, token); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func applySubscriberInput(s *entities.Subscriber, input *entities.SubscriberInput) error {
	expiry, err := parseDate(input.ExpiryDate)
	if err != nil {
		return domainerrors.Validation(map[string]string{"expiryDate": "Expiry date is invalid."})
	}

	s.TradingViewID = strings.TrimSpace(input.TradingViewID)
	s.Name = strings.TrimSpace(input.Name)
	s.PhoneEmail = strings.TrimSpace(input.PhoneEmail)
	s.ReferralID = null.NewString(strings.TrimSpace(input.ReferralID), strings.TrimSpace(input.ReferralID) != "")
	s.Plan = entities.Plan(input.Plan)
	s.ExpiryDate = expiry
	if input.Status != "" {
		s.Status = entities.SubscriberStatus(input.Status)
	}
	return nil
}
