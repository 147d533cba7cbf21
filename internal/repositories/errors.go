package repositories

import "errors"

// ErrDuplicateEntry is returned when an insert violates a uniqueness
// constraint. Services translate it into the matching conflict error.
var ErrDuplicateEntry = errors.New("duplicate entry")
