package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Closed error set exposed by the record store. Repositories translate
// provider errors here so no caller ever inspects sqlite or gorm codes.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

func translateStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	// Older glebarez/sqlite builds report constraint failures without a
	// typed error, so match the sqlite message as a fallback.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}
