package assistant

import "errors"

var (
	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the service answered without any text
	// candidate (safety block or empty completion).
	ErrEmptyResponse = errors.New("generation returned no text")
)
