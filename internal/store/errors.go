package store

import "errors"

// ErrNotFound is the absence marker returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")
