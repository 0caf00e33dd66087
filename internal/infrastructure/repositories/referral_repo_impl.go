package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
)

// ReferralRepositoryImpl implements ReferralRepository
type ReferralRepositoryImpl struct {
	db *gorm.DB
}

func NewReferralRepository(db *gorm.DB) *ReferralRepositoryImpl {
	return &ReferralRepositoryImpl{db: db}
}

func (r *ReferralRepositoryImpl) Create(ctx context.Context, ref *entities.Referral) error {
	return mapError(GetDB(ctx, r.db).Create(r.toModel(ref)).Error)
}

func (r *ReferralRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Referral, error) {
	var m models.Referral
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

func (r *ReferralRepositoryImpl) List(ctx context.Context) ([]*entities.Referral, error) {
	var ms []models.Referral
	if err := GetDB(ctx, r.db).Order("created_at DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Referral, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *ReferralRepositoryImpl) Update(ctx context.Context, ref *entities.Referral) error {
	return affected(GetDB(ctx, r.db).Model(&models.Referral{}).Where("id = ?", ref.ID).Updates(map[string]interface{}{
		"referrer":           ref.Referrer,
		"count_of_referrals": ref.CountOfReferrals,
		"commission_earned":  ref.CommissionEarned,
		"status":             string(ref.Status),
		"updated_at":         time.Now(),
	}))
}

func (r *ReferralRepositoryImpl) Delete(ctx context.Context, id string) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Referral{}, "id = ?", id))
}

func (r *ReferralRepositoryImpl) toModel(ref *entities.Referral) *models.Referral {
	return &models.Referral{
		ID:               ref.ID,
		Referrer:         ref.Referrer,
		CountOfReferrals: ref.CountOfReferrals,
		CommissionEarned: ref.CommissionEarned,
		Status:           string(ref.Status),
		CreatedAt:        ref.CreatedAt,
		UpdatedAt:        ref.UpdatedAt,
	}
}

func (r *ReferralRepositoryImpl) toEntity(m *models.Referral) *entities.Referral {
	return &entities.Referral{
		ID:               m.ID,
		Referrer:         m.Referrer,
		CountOfReferrals: m.CountOfReferrals,
		CommissionEarned: m.CommissionEarned,
		Status:           entities.ReferralStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
