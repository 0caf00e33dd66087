package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tradedesk.backend/internal/domain/entities"
	"tradedesk.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account. Emails are stored normalized.
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	m := r.toModel(account)
	m.Email = entities.NormalizeEmail(m.Email)
	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return mapError(err)
	}
	account.Email = m.Email
	return nil
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets an account by email, ignoring case
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).Where("email = ?", entities.NormalizeEmail(email)).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return r.toEntity(&m), nil
}

// UpdatePassword replaces the password hash
func (r *AccountRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return affected(GetDB(ctx, r.db).Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	}))
}

// UpdateTheme stores the theme preference
func (r *AccountRepository) UpdateTheme(ctx context.Context, id uuid.UUID, theme entities.Theme) error {
	return affected(GetDB(ctx, r.db).Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"theme":      string(theme),
		"updated_at": time.Now(),
	}))
}

// Count counts accounts
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := GetDB(ctx, r.db).Model(&models.Account{}).Count(&n).Error
	return n, err
}

func (r *AccountRepository) toModel(a *entities.Account) *models.Account {
	return &models.Account{
		ID:           a.ID,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Theme:        string(a.Theme),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AccountRepository) toEntity(m *models.Account) *entities.Account {
	a := &entities.Account{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.AccountRole(m.Role),
		Theme:        entities.Theme(m.Theme),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		a.DeletedAt = &t
	}
	return a
}
