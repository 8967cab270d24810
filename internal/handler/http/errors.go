package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidBearerToken is returned when the "Authorization" header is
	// present but does not carry exactly a "Bearer <token>" value.
	ErrInvalidBearerToken = errors.New("Invalid Bearer token")
)
