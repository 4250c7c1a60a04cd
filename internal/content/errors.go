package content

import "errors"

var (
	// ErrProjectNotFound is returned when no project has the requested slug.
	ErrProjectNotFound = errors.New("project not found")

	// ErrMissingContent is returned when a required content file is absent.
	ErrMissingContent = errors.New("content file missing")

	// ErrInvalidContent is returned when a content file is not valid JSON or
	// does not match its schema.
	ErrInvalidContent = errors.New("invalid content")
)
