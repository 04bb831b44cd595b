// Package auth provides credential verification, bearer token issuance
// and validation, and the session guard that resolves a token to an
// authenticated user.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// Tokens are stateless: validity is determined purely by signature and
// expiry, with no server-side revocation list.
type JWTService interface {
	// GenerateToken creates a signed access token for the given subject
	// (the username) using the configured default lifetime.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// GenerateTokenWithTTL creates a signed access token whose expiry is
	// the issue time plus the given lifetime, overriding the default.
	GenerateTokenWithTTL(ctx context.Context, subject string, ttl time.Duration) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken when the token is past its expiry
	// and ErrInvalidToken for malformed or badly signed tokens.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the claim set carried by issued tokens.
type Claims struct {
	// Subject is the username the token was issued for.
	Subject string `json:"sub,omitempty"`

	// IssuedAt is when the token was minted.
	IssuedAt time.Time `json:"iat,omitempty"`

	// ExpiresAt is the absolute expiry; the token is rejected after this.
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is a unique identifier for this token.
	ID string `json:"jti,omitempty"`
}
