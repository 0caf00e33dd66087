// Package redisstore keeps the short-lived UI and wizard state in Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"tradedesk.backend/internal/domain/entities"
	pkgredis "tradedesk.backend/pkg/redis"
)

const (
	viewStatePrefix = "tableview:"
	ViewStateTTL    = 30 * 24 * time.Hour
)

var marshalViewState = json.Marshal

// ViewStateStore implements repositories.ViewStateStore
type ViewStateStore struct {
	ttl time.Duration
}

func NewViewStateStore() *ViewStateStore {
	return &ViewStateStore{ttl: ViewStateTTL}
}

func viewStateKey(accountID uuid.UUID, scene string) string {
	return viewStatePrefix + accountID.String() + ":" + scene
}

// Get returns the stored state, or a zero state when none is stored
func (s *ViewStateStore) Get(ctx context.Context, accountID uuid.UUID, scene string) (*entities.ViewState, error) {
	raw, err := pkgredis.Get(ctx, viewStateKey(accountID, scene))
	if pkgredis.IsNil(err) {
		return &entities.ViewState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get view state: %w", err)
	}

	var state entities.ViewState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		// A corrupt entry is treated as absent.
		return &entities.ViewState{}, nil
	}
	return &state, nil
}

// Save replaces the stored state and refreshes its TTL
func (s *ViewStateStore) Save(ctx context.Context, accountID uuid.UUID, scene string, state *entities.ViewState) error {
	raw, err := marshalViewState(state)
	if err != nil {
		return fmt.Errorf("marshal view state: %w", err)
	}
	if err := pkgredis.Set(ctx, viewStateKey(accountID, scene), raw, s.ttl); err != nil {
		return fmt.Errorf("save view state: %w", err)
	}
	return nil
}
