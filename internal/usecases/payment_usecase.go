package usecases

import (
	"context"
	"fmt"
	"strings"

	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
)

// PaymentUsecase manages received UPI payments
type PaymentUsecase struct {
	repo      repositories.PaymentRepository
	confirmer *Confirmer
}

func NewPaymentUsecase(repo repositories.PaymentRepository, confirmer *Confirmer) *PaymentUsecase {
	return &PaymentUsecase{repo: repo, confirmer: confirmer}
}

func (u *PaymentUsecase) List(ctx context.Context) ([]*entities.Payment, error) {
	return u.repo.List(ctx)
}

func (u *PaymentUsecase) Get(ctx context.Context, id string) (*entities.Payment, error) {
	return u.repo.GetByID(ctx, id)
}

// Create records a payment. A missing date means today.
func (u *PaymentUsecase) Create(ctx context.Context, input *entities.PaymentInput) (*entities.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &entities.Payment{ID: newRecordID(PaymentIDPrefix)}
	if err := applyPaymentInput(p, input); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *PaymentUsecase) Update(ctx context.Context, id string, input *entities.PaymentInput) (*entities.Payment, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyPaymentInput(p, input); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *PaymentUsecase) RequestDelete(ctx context.Context, id string) (*entities.DeleteConfirmation, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.confirmer.Request(ctx, ResourcePayments, id, fmt.Sprintf("payment %s from %s", p.ID, p.User))
}

func (u *PaymentUsecase) Delete(ctx context.Context, id, token string) error {
	if err := u.confirmer.Confirm(ctx, ResourcePayments, id, token); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func applyPaymentInput(p *entities.Payment, input *entities.PaymentInput) error {
	date, err := parseDate(input.Date)
	if err != nil {
		return domainerrors.Validation(map[string]string{"date": "Date is invalid."})
	}
	if date.IsZero() {
		date = startOfDay(timeNow())
	}

	p.UPIUsed = strings.TrimSpace(input.UPIUsed)
	p.User = strings.TrimSpace(input.User)
	p.Amount = input.Amount
	p.Date = date
	p.Status = entities.PaymentStatus(input.Status)
	return nil
}
