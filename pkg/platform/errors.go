package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrNotFound is returned when no pull/merge request exists for the number.
	ErrNotFound = errors.New("no merge/pull request found")

	// ErrAPIMergeDisabled is returned when a merge is requested but the
	// configuration explicitly disabled forge-API merging.
	ErrAPIMergeDisabled = errors.New("merging through the forge API is disabled by configuration")
)
