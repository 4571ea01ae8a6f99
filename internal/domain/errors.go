package domain

import "errors"

var (
	// ErrDataFetch marks a data source that was unavailable or returned garbage.
	ErrDataFetch = errors.New("data fetch failed")

	// ErrUnknownCategory is returned for category ids outside the catalogue.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoActiveCategory is returned by operations that need a category view.
	ErrNoActiveCategory = errors.New("no category selected")

	// ErrNotSupported is returned for operations the active category lacks,
	// such as show-all outside the weather view.
	ErrNotSupported = errors.New("operation not supported for category")
)
