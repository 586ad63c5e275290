package auth

import "time"

// TokenManager defines the interface for token pair operations.
type TokenManager interface {
	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration
	// GenerateAccessToken creates a new signed access token for a user.
	GenerateAccessToken(userID string) (string, error)
	// GenerateRefreshToken creates a new signed refresh token for a user.
	GenerateRefreshToken(userID string) (string, error)
	// GeneratePair issues a fresh access/refresh token pair for a user.
	GeneratePair(userID string) (*TokenPair, error)
	// ValidateAccessToken parses and validates an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)
	// ValidateRefreshToken parses and validates a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

// Ensure JWTManager implements TokenManager interface
var _ TokenManager = (*JWTManager)(nil)
