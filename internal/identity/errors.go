package identity

import "errors"

var (
	// ErrUnavailable indicates the identity provider is unreachable.
	ErrUnavailable = errors.New("identity provider unavailable")

	// ErrNoSession indicates no user is currently signed in.
	ErrNoSession = errors.New("no active session")
)

// AuthError carries the provider's message, surfaced verbatim to the user.
// Auth failures are terminal: no retry, the lifecycle stays signed out.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
