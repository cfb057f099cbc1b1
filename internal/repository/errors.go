package repository

import "errors"

// ErrNotFound is returned by all repositories when no row matches the
// given id. Services translate it into entity-specific not-found errors.
var ErrNotFound = errors.New("not found")
