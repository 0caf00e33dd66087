package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
)

// PaymentRepositoryImpl implements PaymentRepository
type PaymentRepositoryImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepositoryImpl {
	return &PaymentRepositoryImpl{db: db}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, p *entities.Payment) error {
	return mapError(GetDB(ctx, r.db).Create(r.toModel(p)).Error)
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id string) (*entities.Payment, error) {
	var m models.Payment
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// List returns payments newest first
func (r *PaymentRepositoryImpl) List(ctx context.Context) ([]*entities.Payment, error) {
	var ms []models.Payment
	if err := GetDB(ctx, r.db).Order("date DESC").Order("id DESC").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*entities.Payment, 0, len(ms))
	for i := range ms {
		out = append(out, r.toEntity(&ms[i]))
	}
	return out, nil
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, p *entities.Payment) error {
	return affected(GetDB(ctx, r.db).Model(&models.Payment{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"upi_used":   p.UPIUsed,
		"user_name":  p.User,
		"amount":     p.Amount,
		"date":       p.Date,
		"status":     string(p.Status),
		"updated_at": time.Now(),
	}))
}

func (r *PaymentRepositoryImpl) Delete(ctx context.Context, id string) error {
	return affected(GetDB(ctx, r.db).Delete(&models.Payment{}, "id = ?", id))
}

func (r *PaymentRepositoryImpl) toModel(p *entities.Payment) *models.Payment {
	return &models.Payment{
		ID:        p.ID,
		UPIUsed:   p.UPIUsed,
		User:      p.User,
		Amount:    p.Amount,
		Date:      p.Date,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PaymentRepositoryImpl) toEntity(m *models.Payment) *entities.Payment {
	return &entities.Payment{
		ID:        m.ID,
		UPIUsed:   m.UPIUsed,
		User:      m.User,
		Amount:    m.Amount,
		Date:      m.Date,
		Status:    entities.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
