package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
)

// SubscriberRepositoryImpl implements SubscriberRepository
type SubscriberRepositoryImpl struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) *SubscriberRepositoryImpl {
	return &SubscriberRepositoryImpl{db: db}
}

func (r *SubscriberRepositoryImpl) Create(ctx context.Context, s *entities.Subscriber) error {
	return mapError(GetDB(ctx, r.db).Create(r.toModel(s)).Error)
}

func (r *SubscriberRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Subscriber, error) {
	var m models.Subscriber
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// List returns subscribers newest first. Kind demo means plan Demo; kind paid means any
// other plan.
func (r *SubscriberRepositoryImpl) List(ctx context.Context, filter entities.SubscriberFilter) ([]*entities.Subscriber, error) {
	query := GetDB(ctx, r.db).Order("joined_date DESC").Order("id DESC")
	switch filter.Kind {
	case entities.SubscriberKindDemo:
		query = query.Where("plan = ?", string(entities.PlanDemo))
	case entities.SubscriberKindPaid:
		query = query.Where("plan <> ?", string(entities.PlanDemo))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var ms []models.Subscriber
	if err := query.Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Subscriber, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *SubscriberRepositoryImpl) Update(ctx context.Context, s *entities.Subscriber) error {
	return affected(GetDB(ctx, r.db).Model(&models.Subscriber{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"trading_view_id": s.TradingViewID,
		"name":            s.Name,
		"phone_email":     s.PhoneEmail,
		"referral_id":     s.ReferralID,
		"plan":            string(s.Plan),
		"expiry_date":     s.ExpiryDate,
		"status":          string(s.Status),
		"updated_at":      time.Now(),
	}))
}

func (r *SubscriberRepositoryImpl) Delete(ctx context.Context, id string) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Subscriber{}, "id = ?", id))
}

func (r *SubscriberRepositoryImpl) GetExpiredActive(ctx context.Context, now time.Time, limit int) ([]*entities.Subscriber, error) {
	var ms []models.Subscriber
	if err := GetDB(ctx, r.db).
		Where("status = ? AND expiry_date < ?", string(entities.SubscriberStatusActive), now).
		Order("expiry_date ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Subscriber, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *SubscriberRepositoryImpl) ExpireSubscribers(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Model(&models.Subscriber{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.SubscriberStatusExpired),
			"updated_at": time.Now(),
		}).Error
}

func (r *SubscriberRepositoryImpl) toModel(s *entities.Subscriber) *models.Subscriber {
	return &models.Subscriber{
		ID:            s.ID,
		TradingViewID: s.TradingViewID,
		Name:          s.Name,
		PhoneEmail:    s.PhoneEmail,
		ReferralID:    s.ReferralID,
		Plan:          string(s.Plan),
		ExpiryDate:    s.ExpiryDate,
		Status:        string(s.Status),
		JoinedDate:    s.JoinedDate,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (r *SubscriberRepositoryImpl) toEntity(m *models.Subscriber) *entities.Subscriber {
	return &entities.Subscriber{
		ID:            m.ID,
		TradingViewID: m.TradingViewID,
		Name:          m.Name,
		PhoneEmail:    m.PhoneEmail,
		ReferralID:    m.ReferralID,
		Plan:          entities.Plan(m.Plan),
		ExpiryDate:    m.ExpiryDate,
		Status:        entities.SubscriberStatus(m.Status),
		JoinedDate:    m.JoinedDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
