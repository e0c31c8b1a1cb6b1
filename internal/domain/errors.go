package domain

import "errors"

// Sentinel errors for domain validation failures.
// Use with errors.Is() for checking and fmt.Errorf("%w", ...) for wrapping
// with context.

var (
	// ErrFeedInvalid indicates the feed document is malformed or fails validation
	ErrFeedInvalid = errors.New("feed is invalid")

	// ErrEpisodeInvalid indicates an episode entry is missing required fields
	ErrEpisodeInvalid = errors.New("episode is invalid")
)
