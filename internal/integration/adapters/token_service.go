// Package adapters implements integration services consumed by use cases.
package adapters

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidScopeToken is returned when a scope token fails validation.
var ErrInvalidScopeToken = errors.New("invalid scope token")

// TokenService issues and validates household scope tokens. The token's
// subject is the household ID; every request carries exactly one scope, which
// is how cross-household reads are kept impossible at this boundary.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new TokenService instance.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// IssueScopeToken creates a signed token for a household scope.
func (s *TokenService) IssueScopeToken(householdID uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   householdID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign scope token: %w", err)
	}
	return signed, nil
}

// ValidateScopeToken verifies the signature and expiry and returns the
// household ID the token is scoped to.
func (s *TokenService) ValidateScopeToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidScopeToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidScopeToken
	}

	householdID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidScopeToken
	}
	return householdID, nil
}
