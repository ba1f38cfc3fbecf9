package core

import "errors"

// Common errors.
var (
	// ErrInvalidDate is returned when a calendar date does not exist.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidMode is returned when a mutation mode cannot be parsed.
	ErrInvalidMode = errors.New("invalid mode, expected append or prepend")
	// ErrReadOnly is returned by stores that refuse writes.
	ErrReadOnly = errors.New("store is in read-only mode")
	// ErrNotMarkdown marks paths skipped by a tidy-up because they are not Markdown files.
	ErrNotMarkdown = errors.New("not a Markdown file")
	// ErrRootNotFound is returned when no graph root can be discovered.
	ErrRootNotFound = errors.New("graph root not found")
)
