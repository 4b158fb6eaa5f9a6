package matching

import "errors"

// Validation errors are raised at the session or search boundary before any
// matching work begins. The callers surface kind and message verbatim.
var (
	// ErrInvalidPattern marks a keyword that is empty or whitespace-only
	// after trimming.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidText marks a missing document text source. An empty string
	// is a valid text; the absence of one is not.
	ErrInvalidText = errors.New("invalid text")

	// ErrUnknownAlgorithm marks an unrecognized algorithm identifier.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
