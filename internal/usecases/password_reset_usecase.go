package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/internal/domain/repositories"
	"tradedesk.backend/pkg/crypto"
)

const (
	MsgNoAccountForEmail = "No account found with this email."
	MsgSecurityMismatch  = "Security answer does not match."
	MsgResetExpired      = "This password reset has expired. Start again."
)

var newResetID = crypto.GenerateConfirmationToken

// PasswordResetStatus is what the wizard shows after each step
type PasswordResetStatus struct {
	ID        string             `json:"id"`
	Step      entities.ResetStep `json:"step"`
	Email     string             `json:"email"`
	ExpiresIn int                `json:"expiresIn"`
}

// PasswordResetUsecase runs the three-step forgot-password wizard
type PasswordResetUsecase struct {
	accountRepo repositories.AccountRepository
	resets      repositories.PasswordResetStore
	hasher      *crypto.Hasher
}

func NewPasswordResetUsecase(
	accountRepo repositories.AccountRepository,
	resets repositories.PasswordResetStore,
	hasher *crypto.Hasher,
) *PasswordResetUsecase {
	return &PasswordResetUsecase{accountRepo: accountRepo, resets: resets, hasher: hasher}
}

// Start looks the email up and opens a wizard waiting for the security answer.
func (u *PasswordResetUsecase) Start(ctx context.Context, input *entities.ResetStartInput) (*PasswordResetStatus, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	account, err := u.accountRepo.GetByEmail(ctx, entities.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgNoAccountForEmail)
		}
		return nil, err
	}

	id, err := newResetID()
	if err != nil {
		return nil, err
	}
	reset := &entities.PasswordReset{
		ID:        id,
		AccountID: account.ID,
		Email:     account.Email,
		Step:      entities.ResetStepVerify,
		CreatedAt: timeNow(),
	}
	if err := u.resets.Save(ctx, reset, PasswordResetTTL); err != nil {
		return nil, err
	}
	return u.status(reset), nil
}

// Verify checks the security answer, the account's first name, ignoring case.
func (u *PasswordResetUsecase) Verify(ctx context.Context, id string, input *entities.ResetVerifyInput) (*PasswordResetStatus, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	reset, err := u.load(ctx, id, entities.ResetStepVerify)
	if err != nil {
		return nil, err
	}

	account, err := u.accountRepo.GetByID(ctx, reset.AccountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgNoAccountForEmail)
		}
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(input.FirstName), strings.TrimSpace(account.FirstName)) {
		return nil, domainerrors.BadRequest(MsgSecurityMismatch)
	}

	reset.Step = entities.ResetStepComplete
	remaining := u.remaining(reset)
	if remaining <= 0 {
		return nil, domainerrors.NotFound(MsgResetExpired)
	}
	if err := u.resets.Save(ctx, reset, remaining); err != nil {
		return nil, err
	}
	return u.status(reset), nil
}

// Complete sets the new password and closes the wizard.
func (u *PasswordResetUsecase) Complete(ctx context.Context, id string, input *entities.ResetCompleteInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	reset, err := u.load(ctx, id, entities.ResetStepComplete)
	if err != nil {
		return err
	}

	passwordHash, err := u.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := u.accountRepo.UpdatePassword(ctx, reset.AccountID, passwordHash); err != nil {
		return err
	}
	return u.resets.Delete(ctx, id)
}

func (u *PasswordResetUsecase) load(ctx context.Context, id string, want entities.ResetStep) (*entities.PasswordReset, error) {
	reset, err := u.resets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(MsgResetExpired)
		}
		return nil, err
	}
	if reset.Step != want {
		return nil, domainerrors.StepOutOfOrder("Complete the previous step first.")
	}
	return reset, nil
}

// remaining keeps the wizard's deadline fixed at CreatedAt + PasswordResetTTL.
func (u *PasswordResetUsecase) remaining(reset *entities.PasswordReset) time.Duration {
	return reset.CreatedAt.Add(PasswordResetTTL).Sub(timeNow())
}

func (u *PasswordResetUsecase) status(reset *entities.PasswordReset) *PasswordResetStatus {
	secs := int(u.remaining(reset).Seconds())
	if secs < 0 {
		secs = 0
	}
	return &PasswordResetStatus{ID: reset.ID, Step: reset.Step, Email: reset.Email, ExpiresIn: secs}
}
