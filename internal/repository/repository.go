package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Callers must be
// able to tell it apart from driver failures, which are returned wrapped and
// unmodified.
var ErrNotFound = errors.New("not found")
