// Package jwtmw issues and verifies identity tokens and provides the
// request-guarding middleware for protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, expired, or
// its signature does not match.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the decoded content of a verified token.
type Identity struct {
	ID      uint
	Email   string
	Nome    string
	IsAdmin bool
}

// TokenService defines issuance and verification of identity tokens.
type TokenService interface {
	// Issue creates a signed, time-limited token for the given identity.
	Issue(id Identity) (string, error)
	// Verify decodes a token, returning ErrInvalidToken on any failure.
	Verify(token string) (*Identity, error)
}

// tokenService implements TokenService with HMAC-SHA256 signatures.
type tokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a TokenService with the injected secret and
// token lifetime.
func NewTokenService(secret string, expiration time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed JWT with the identity claims.
func (s *tokenService) Issue(id Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":     float64(id.ID),
		"email":   id.Email,
		"nome":    id.Nome,
		"isAdmin": id.IsAdmin,
		"exp":     now.Add(s.expiration).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token and extracts the identity claims.
func (s *tokenService) Verify(tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64) // JWT numbers decode as float64
	if !ok {
		return nil, ErrInvalidToken
	}

	id := &Identity{ID: uint(sub)}
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if nome, ok := claims["nome"].(string); ok {
		id.Nome = nome
	}
	if isAdmin, ok := claims["isAdmin"].(bool); ok {
		id.IsAdmin = isAdmin
	}
	return id, nil
}
