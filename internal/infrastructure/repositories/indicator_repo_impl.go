package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
)

// IndicatorRepositoryImpl implements IndicatorRepository
type IndicatorRepositoryImpl struct {
	db *gorm.DB
}

func NewIndicatorRepository(db *gorm.DB) *IndicatorRepositoryImpl {
	return &IndicatorRepositoryImpl{db: db}
}

func (r *IndicatorRepositoryImpl) Create(ctx context.Context, ind *entities.Indicator) error {
	return mapError(GetDB(ctx, r.db).Create(r.toModel(ind)).Error)
}

func (r *IndicatorRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Indicator, error) {
	var m models.Indicator
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *IndicatorRepositoryImpl) List(ctx context.Context) ([]*entities.Indicator, error) {
	var ms []models.Indicator
	if err := GetDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Indicator, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *IndicatorRepositoryImpl) Update(ctx context.Context, ind *entities.Indicator) error {
	return affected(GetDB(ctx, r.db).Model(&models.Indicator{}).Where("id = ?", ind.ID).Updates(map[string]interface{}{
		"name":            ind.Name,
		"image_preview":   ind.ImagePreview,
		"description":     ind.Description,
		"associated_plan": string(ind.AssociatedPlan),
		"updated_at":      time.Now(),
	}))
}

func (r *IndicatorRepositoryImpl) Delete(ctx context.Context, id string) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Indicator{}, "id = ?", id))
}

func (r *IndicatorRepositoryImpl) toModel(ind *entities.Indicator) *models.Indicator {
	return &models.Indicator{
		ID:             ind.ID,
		Name:           ind.Name,
		ImagePreview:   ind.ImagePreview,
		Description:    ind.Description,
		AssociatedPlan: string(ind.AssociatedPlan),
		CreatedAt:      ind.CreatedAt,
		UpdatedAt:      ind.UpdatedAt,
	}
}

func (r *IndicatorRepositoryImpl) toEntity(m *models.Indicator) *entities.Indicator {
	return &entities.Indicator{
		ID:             m.ID,
		Name:           m.Name,
		ImagePreview:   m.ImagePreview,
		Description:    m.Description,
		AssociatedPlan: entities.Plan(m.AssociatedPlan),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
