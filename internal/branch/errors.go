package branch

import "errors"

var (
	// ErrNotFound reports a queried node that has no directory on disk or
	// a name the schema does not declare.
	ErrNotFound = errors.New("not found")

	// ErrExists reports a create that collided with an existing directory
	// or scene file.
	ErrExists = errors.New("already exists")

	// ErrInvalidCategory reports a category name outside the schema's
	// declared category set.
	ErrInvalidCategory = errors.New("invalid category")
)
