// Package token mints and verifies the signed bearer tokens that carry a
// username and expiry. The codec is stateless; the signing secret is loaded
// once at startup and never mutated.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissing   = errors.New("token is missing")
	ErrMalformed = errors.New("token is malformed")
	ErrSignature = errors.New("token signature invalid")
	ErrExpired   = errors.New("token expired")
)

type Codec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewCodec(secret string, accessTTL, refreshTTL time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token: TTLs must be positive")
	}
	return &Codec{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Mint signs a token carrying subject, issued-at and expiry.
func (c *Codec) Mint(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// MintAccess and MintRefresh also return the epoch-millisecond expiry the
// token carries, matching the stored columns.
func (c *Codec) MintAccess(subject string) (string, int64, error) {
	tok, err := c.Mint(subject, c.accessTTL)
	return tok, time.Now().Add(c.accessTTL).UnixMilli(), err
}

func (c *Codec) MintRefresh(subject string) (string, int64, error) {
	tok, err := c.Mint(subject, c.refreshTTL)
	return tok, time.Now().Add(c.refreshTTL).UnixMilli(), err
}

// Verify checks the signature and claims and returns the subject. Failures
// are distinguished so the request gate can report each one differently.
func (c *Codec) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		return "", ErrMissing
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	switch {
	case err == nil:
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrSignature
	default:
		return "", ErrMalformed
	}
}

// IsExpired is a pure expiry check against the embedded claim. It does not
// validate the signature and must only be used on an already trusted token.
func (c *Codec) IsExpired(tokenStr string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}
