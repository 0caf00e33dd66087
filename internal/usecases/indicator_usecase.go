package usecases

import (
	"context"
	"strings"

	"github.com/volatiletech/null/v8"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/domain/repositories"
)

// IndicatorUsecase manages the indicator catalogue
type IndicatorUsecase struct {
	repo      repositories.IndicatorRepository
	confirmer *Confirmer
}

func NewIndicatorUsecase(repo repositories.IndicatorRepository, confirmer *Confirmer) *IndicatorUsecase {
	return &IndicatorUsecase{repo: repo, confirmer: confirmer}
}

func (u *IndicatorUsecase) List(ctx context.Context) ([]*entities.Indicator, error) {
	return u.repo.List(ctx)
}

func (u *IndicatorUsecase) Get(ctx context.Context, id string) (*entities.Indicator, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *IndicatorUsecase) Create(ctx context.Context, input *entities.IndicatorInput) (*entities.Indicator, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ind := &entities.Indicator{ID: newRecordID(IndicatorIDPrefix)}
	applyIndicatorInput(ind, input)
	if err := u.repo.Create(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

func (u *IndicatorUsecase) Update(ctx context.Context, id string, input *entities.IndicatorInput) (*entities.Indicator, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ind, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyIndicatorInput(ind, input)
	if err := u.repo.Update(ctx, ind); err != nil {
		return nil, err
	}
	return ind, nil
}

func (u *IndicatorUsecase) RequestDelete(ctx context.Context, id string) (*entities.DeleteConfirmation, error) {
	ind, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.confirmer.Request(ctx, ResourceIndicators, id, ind.Name)
}

func (u *IndicatorUsecase) Delete(ctx context.Context, id, token string) error {
	if err := u.confirmer.Confirm(ctx, ResourceIndicators, id, token); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func applyIndicatorInput(ind *entities.Indicator, input *entities.IndicatorInput) {
	preview := strings.TrimSpace(input.ImagePreview)
	ind.Name = strings.TrimSpace(input.Name)
	ind.ImagePreview = null.NewString(preview, preview != "")
	ind.Description = strings.TrimSpace(input.Description)
	ind.AssociatedPlan = entities.Plan(input.AssociatedPlan)
}
