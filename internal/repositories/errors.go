package repositories

import "errors"

// ErrNotFound is returned by GetByID when the entity does not exist remotely.
var ErrNotFound = errors.New("not found")
