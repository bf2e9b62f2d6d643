package store

import "errors"

// ErrNotFound is returned when a referenced row does not exist. Handlers
// translate it to a 404.
var ErrNotFound = errors.New("store: not found")
