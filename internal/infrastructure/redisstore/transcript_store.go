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
	transcriptPrefix = "assistant:"
	TranscriptMax    = 50
	TranscriptTTL    = 30 * 24 * time.Hour
)

// TranscriptStore implements repositories.TranscriptStore
type TranscriptStore struct {
	max int64
	ttl time.Duration
}

func NewTranscriptStore() *TranscriptStore {
	return &TranscriptStore{max: TranscriptMax, ttl: TranscriptTTL}
}

func transcriptKey(accountID uuid.UUID) string {
	return transcriptPrefix + accountID.String()
}

// Append adds entries in order and keeps only the newest entries
func (s *TranscriptStore) Append(ctx context.Context, accountID uuid.UUID, entries ...entities.TranscriptEntry) error {
	if len(entries) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(entries))
	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal transcript entry: %w", err)
		}
		values = append(values, raw)
	}
	if err := pkgredis.AppendCapped(ctx, transcriptKey(accountID), s.max, s.ttl, values...); err != nil {
		return fmt.Errorf("append transcript: %w", err)
	}
	return nil
}

// List returns the transcript oldest first. Undecodable entries are skipped.
func (s *TranscriptStore) List(ctx context.Context, accountID uuid.UUID) ([]entities.TranscriptEntry, error) {
	raws, err := pkgredis.Range(ctx, transcriptKey(accountID), 0, -1)
	if err != nil && !pkgredis.IsNil(err) {
		return nil, fmt.Errorf("list transcript: %w", err)
	}
	out := make([]entities.TranscriptEntry, 0, len(raws))
	for _, raw := range raws {
		var e entities.TranscriptEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *TranscriptStore) Clear(ctx context.Context, accountID uuid.UUID) error {
	return pkgredis.Del(ctx, transcriptKey(accountID))
}
