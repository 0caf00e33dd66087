package utils

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	newUUIDv7 = uuid.NewV7
	nowMillis = func() int64 { return time.Now().UnixMilli() }

	recordMu   sync.Mutex
	lastRecord int64
)

// GenerateUUIDv7 generates a new UUID v7
func GenerateUUIDv7() uuid.UUID {
	id, err := newUUIDv7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// NewRecordID returns prefix followed by a millisecond timestamp, e.g. "PAY1712345678901".
// The timestamp part never repeats within a process: a second call in the same
// millisecond gets the next millisecond.
func NewRecordID(prefix string) string {
	recordMu.Lock()
	ts := nowMillis()
	if ts <= lastRecord {
		ts = lastRecord + 1
	}
	lastRecord = ts
	recordMu.Unlock()

	return prefix + strconv.FormatInt(ts, 10)
}
