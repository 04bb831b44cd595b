package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or signature doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMissingToken indicates a token was expected but not provided
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrUnauthenticated indicates the request carries no usable identity:
	// the token is missing, malformed, badly signed, or expired.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnknownSubject indicates the token is valid but its subject no
	// longer resolves to an existing user.
	ErrUnknownSubject = errors.New("token subject does not resolve to a user")
)
