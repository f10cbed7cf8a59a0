package store

import "errors"

// Error kinds surfaced by store operations. Callers branch with
// errors.Is; filesystem failures propagate wrapped without a sentinel.
var (
	// ErrNotFound covers a missing source file, an unknown backup id,
	// and a known id whose content file is gone.
	ErrNotFound = errors.New("not found")

	// ErrInvalidJSON means the source did not parse as JSON; nothing is
	// written when it is returned.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrBadArgument means a non-positive pruning parameter.
	ErrBadArgument = errors.New("bad argument")
)
