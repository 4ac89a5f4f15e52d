package repository

import "errors"

// ErrVersionConflict is returned by Update when the stored aggregate
// version no longer matches the caller's copy.
var ErrVersionConflict = errors.New("aggregate version conflict")
