package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no row. Services and
// handlers test against this instead of gorm.ErrRecordNotFound.
var ErrNotFound = errors.New("record not found")
