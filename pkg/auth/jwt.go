// Package auth provides authentication utilities including password hashing,
// JWT token pairs, and one-time reset codes.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures, distinguished so callers can produce distinct
// user-facing messages. All of them deny access.
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenInvalid   = errors.New("token is invalid")
)

// Claims represents the JWT claims (data stored in the token).
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenPair bundles a short-lived access token with a long-lived refresh
// token. Both are opaque signed strings to all callers except JWTManager.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// JWTManager issues and verifies access and refresh tokens. The two token
// kinds are signed with independent secrets and expiry policies.
type JWTManager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewJWTManager creates a JWT manager with separate secrets and TTLs for
// access and refresh tokens.
func NewJWTManager(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) *JWTManager {
	return &JWTManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// AccessTokenTTL returns the configured access token lifetime.
func (j *JWTManager) AccessTokenTTL() time.Duration {
	return j.accessExpiry
}

// GenerateAccessToken creates a new signed access token for a user.
func (j *JWTManager) GenerateAccessToken(userID string) (string, error) {
	return j.generate(userID, j.accessSecret, j.accessExpiry)
}

// GenerateRefreshToken creates a new signed refresh token for a user.
func (j *JWTManager) GenerateRefreshToken(userID string) (string, error) {
	return j.generate(userID, j.refreshSecret, j.refreshExpiry)
}

// GeneratePair issues a fresh access/refresh token pair for a user.
func (j *JWTManager) GeneratePair(userID string) (*TokenPair, error) {
	accessToken, err := j.GenerateAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := j.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ValidateAccessToken parses and validates an access token.
func (j *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return j.validate(tokenString, j.accessSecret)
}

// ValidateRefreshToken parses and validates a refresh token.
func (j *JWTManager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return j.validate(tokenString, j.refreshSecret)
}

func (j *JWTManager) generate(userID string, secret []byte, expiry time.Duration) (string, error) {
	// iat/exp only have second precision, so without a jti two tokens minted
	// in the same second would be byte-identical and refresh rotation would
	// be a no-op.
	jti, err := newTokenID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (j *JWTManager) validate(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
