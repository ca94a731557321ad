package world

import "errors"

// ErrNotFound is returned by lookups for ids that have no live entity.
var ErrNotFound = errors.New("entity not found")
