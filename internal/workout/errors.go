package workout

import "errors"

var (
	// ErrNotFound is returned when an entity, or a parent it needs,
	// cannot be resolved.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned on an exercise name collision
	// (names are compared trimmed and case-insensitive).
	ErrDuplicateName = errors.New("exercise name already exists")
	// ErrForbidden is returned on an attempt to delete a default exercise.
	ErrForbidden = errors.New("default exercises cannot be deleted")
	// ErrValidation is returned for out-of-range input, wrapped with
	// the offending field.
	ErrValidation = errors.New("validation failed")
)
