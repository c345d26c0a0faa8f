package postgres

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned for absent records and, deliberately, for
// records owned by another user. Callers cannot distinguish the two,
// which avoids leaking record existence across accounts.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
