package redisstore

import (
	"context"
	"fmt"
	"time"

	"tradedesk.backend/pkg/crypto"
	pkgredis "tradedesk.backend/pkg/redis"
)

const confirmPrefix = "confirm:"

// ConfirmationStore implements repositories.ConfirmationStore
type ConfirmationStore struct{}

func NewConfirmationStore() *ConfirmationStore {
	return &ConfirmationStore{}
}

func confirmKey(resource, id string) string {
	return confirmPrefix + resource + ":" + id
}

// Issue stores token for resource/id, replacing any earlier token
func (s *ConfirmationStore) Issue(ctx context.Context, resource, id, token string, ttl time.Duration) error {
	if err := pkgredis.Set(ctx, confirmKey(resource, id), token, ttl); err != nil {
		return fmt.Errorf("issue confirmation: %w", err)
	}
	return nil
}

// Consume removes the stored token and reports whether it matched token
func (s *ConfirmationStore) Consume(ctx context.Context, resource, id, token string) (bool, error) {
	stored, err := pkgredis.GetDel(ctx, confirmKey(resource, id))
	if pkgredis.IsNil(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("consume confirmation: %w", err)
	}
	return token != "" && crypto.TokensEqual(stored, token), nil
}
