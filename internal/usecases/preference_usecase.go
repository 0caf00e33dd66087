package usecases

import (
	"context"

	"github.com/google/uuid"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/domain/repositories"
)

// Preferences is the shell state kept on the account
type Preferences struct {
	Theme entities.Theme `json:"theme"`
}

// PreferenceUsecase reads and changes shell preferences
type PreferenceUsecase struct {
	accountRepo repositories.AccountRepository
}

func NewPreferenceUsecase(accountRepo repositories.AccountRepository) *PreferenceUsecase {
	return &PreferenceUsecase{accountRepo: accountRepo}
}

func (u *PreferenceUsecase) Get(ctx context.Context, accountID uuid.UUID) (*Preferences, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	theme := account.Theme
	if theme == "" {
		theme = entities.ThemeDark
	}
	return &Preferences{Theme: theme}, nil
}

func (u *PreferenceUsecase) Update(ctx context.Context, accountID uuid.UUID, input *entities.PreferenceInput) (*Preferences, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	theme := entities.Theme(input.Theme)
	if err := u.accountRepo.UpdateTheme(ctx, accountID, theme); err != nil {
		return nil, err
	}
	return &Preferences{Theme: theme}, nil
}

// ToggleTheme flips between dark and light
func (u *PreferenceUsecase) ToggleTheme(ctx context.Context, accountID uuid.UUID) (*Preferences, error) {
	current, err := u.Get(ctx, accountID)
	if err != nil {
		return nil, err
	}
	theme := current.Theme.Toggle()
	if err := u.accountRepo.UpdateTheme(ctx, accountID, theme); err != nil {
		return nil, err
	}
	return &Preferences{Theme: theme}, nil
}
