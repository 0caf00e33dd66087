package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradedesk.backend/internal/domain/entities"
	domainerrors "tradedesk.backend/internal/domain/errors"
	pkgredis "tradedesk.backend/pkg/redis"
)

const resetPrefix = "pwreset:"

// PasswordResetStore implements repositories.PasswordResetStore
type PasswordResetStore struct{}

func NewPasswordResetStore() *PasswordResetStore {
	return &PasswordResetStore{}
}

func (s *PasswordResetStore) Save(ctx context.Context, reset *entities.PasswordReset, ttl time.Duration) error {
	raw, err := json.Marshal(reset)
	if err != nil {
		return fmt.Errorf("marshal reset: %w", err)
	}
	if err := pkgredis.Set(ctx, resetPrefix+reset.ID, raw, ttl); err != nil {
		return fmt.Errorf("save reset: %w", err)
	}
	return nil
}

func (s *PasswordResetStore) Get(ctx context.Context, id string) (*entities.PasswordReset, error) {
	raw, err := pkgredis.Get(ctx, resetPrefix+id)
	if pkgredis.IsNil(err) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get reset: %w", err)
	}
	var reset entities.PasswordReset
	if err := json.Unmarshal([]byte(raw), &reset); err != nil {
		return nil, fmt.Errorf("decode reset: %w", err)
	}
	return &reset, nil
}

func (s *PasswordResetStore) Delete(ctx context.Context, id string) error {
	return pkgredis.Del(ctx, resetPrefix+id)
}
