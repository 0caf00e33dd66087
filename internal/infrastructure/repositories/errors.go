package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	domainerrors "tradedesk.backend/internal/domain/errors"
)

// mapError translates gorm errors into domain errors.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domainerrors.ErrNotFound
	case isDuplicateKey(err):
		return domainerrors.ErrAlreadyExists
	}
	return err
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// affected returns ErrNotFound when a write touched no rows.
func affected(result *gorm.DB) error {
	if result.Error != nil {
		return mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
