// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives for sessions and forms.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, token signing,
// CSRF minting) from the domain logic. Nothing here touches storage; session
// liveness is checked by the auth service against Redis.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any session token that fails verification.
var ErrInvalidToken = errors.New("sec: invalid session token")

// SessionClaims is the payload of the session cookie.
//
// The registered ID claim (jti) is the server-side session identifier, so a
// token whose session key was deleted from Redis is rejected even though its
// signature is still valid.
type SessionClaims struct {
	jwt.RegisteredClaims

	UserID   int64  `json:"uid"`
	Username string `json:"unm"`
}

// SessionID returns the server-side session identifier carried in jti.
func (c *SessionClaims) SessionID() string { return c.ID }

// TokenService signs and verifies session tokens with HMAC-SHA256.
type TokenService struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenService creates a new TokenService bound to secret.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("sec: session secret must be at least 16 bytes")
	}
	return &TokenService{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

/*
IssueSessionToken signs a token for the given session and user.

Parameters:
  - sessionID: string (Redis session key suffix)
  - userID: int64
  - username: string
  - ttl: time.Duration

Returns:
  - string: The compact JWT
  - error: Signing failures
*/
func (s *TokenService) IssueSessionToken(sessionID string, userID int64, username string, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
		UserID:   userID,
		Username: username,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign session token: %w", err)
	}
	return signed, nil
}

// VerifySessionToken checks the signature, issuer and expiry of a session token.
func (s *TokenService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Secret exposes the signing key to sibling primitives (CSRF minting).
func (s *TokenService) Secret() []byte { return s.secret }
