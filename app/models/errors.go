package models

import "errors"

var (
	// ErrNotFound is returned when a permalink does not resolve inside a blog.
	ErrNotFound = errors.New("no post or comment found with permalink")
	// ErrAuthorMismatch is returned when someone other than the author deletes an entity.
	ErrAuthorMismatch = errors.New("only the author may delete this entry")
	// ErrDuplicatePermalink is returned when a new comment reuses an existing permalink.
	ErrDuplicatePermalink = errors.New("permalink already exists")
	// ErrInvalid wraps struct validation failures.
	ErrInvalid = errors.New("invalid entry")
)
