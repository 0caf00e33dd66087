package usecases

import (
	"strings"
	"time"

	domainerrors "tradedesk.backend/internal/domain/errors"
	"tradedesk.backend/pkg/utils"
	"tradedesk.backend/pkg/validation"
)

var (
	timeNow     = time.Now
	newRecordID = utils.NewRecordID
)

// validateInput runs the struct rules on input and reports every failing field at once.
func validateInput(input any) error {
	if fields := validation.Validate(input); len(fields) > 0 {
		return domainerrors.Validation(fields)
	}
	return nil
}

// parseDate reads a form date in the local zone. Empty input is the zero time.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, timeNow().Location())
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
