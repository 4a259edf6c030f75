package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims are the claims the booking backend puts in its session tokens.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspect decodes a bearer token without verifying its signature.
// The signing key lives on the backend; the client only needs the expiry.
func Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// CheckExpiry reports ErrExpiredToken when the token's exp claim is before now.
// Tokens without an exp claim never expire client-side.
func CheckExpiry(claims *Claims, now time.Time) error {
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return ErrExpiredToken
	}
	return nil
}

// Expired inspects the token and reports whether it is known to be expired.
// Opaque tokens that cannot be decoded are reported as not expired.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil {
		return false
	}
	return errors.Is(CheckExpiry(claims, now), ErrExpiredToken)
}
