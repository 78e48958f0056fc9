package repositories

import "errors"

// ErrNotFound is returned when no record matches both the identifier and the
// owner. A record owned by someone else is indistinguishable from a missing
// one.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when registering an email that already exists.
var ErrDuplicateEmail = errors.New("email already registered")
