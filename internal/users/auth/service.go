// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/pokedex/internal/platform/apperr"
	"github.com/taibuivan/pokedex/internal/platform/sec"
	"github.com/taibuivan/pokedex/internal/platform/validate"
)

// # Contracts & Types

// TokenProvider signs and verifies session tokens.
type TokenProvider interface {
	IssueSessionToken(sessionID string, userID int64, username string, ttl time.Duration) (string, error)
	VerifySessionToken(token string) (*sec.SessionClaims, error)
}

// Service implements signup, login, logout and session resolution.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	sessionTTL        time.Duration
	logger            *slog.Logger
	now               func() time.Time
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		sessionTTL:        sessionTTL,
		logger:            logger,
		now:               time.Now,
	}
}

// SessionTTL is the lifetime of sessions issued by this service.
func (service *Service) SessionTTL() time.Duration {
	return service.sessionTTL
}

// # Registration Flow

// SignupInput holds the data required to enroll a new member.
type SignupInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *SignupInput) normalize() {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
}

func (in SignupInput) validate() error {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, in.Username).
		MinLen(FieldUsername, in.Username, MinUsernameLen).
		MaxLen(FieldUsername, in.Username, MaxUsernameLen)
	validator.Required(FieldEmail, in.Email).
		Email(FieldEmail, in.Email).
		MaxLen(FieldEmail, in.Email, MaxEmailLen)
	validator.Required(FieldPassword, in.Password).
		MinLen(FieldPassword, in.Password, MinPasswordLen).
		MaxLen(FieldPassword, in.Password, MaxPasswordLen)
	return validator.Err()
}

/*
Signup validates, hashes and persists a new account, then opens a session.

Parameters:
  - ctx: context.Context
  - in: SignupInput

Returns:
  - *LoginSession: Session token and the created user
  - error: VALIDATION_ERROR, CONFLICT on a taken username or email
*/
func (service *Service) Signup(ctx context.Context, in SignupInput) (*LoginSession, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{Username: in.Username, Email: in.Email, PasswordHash: hashedPassword}
	if err := service.userRepository.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_signed_up", slog.Int64("user_id", user.ID), slog.String("username", user.Username))
	return service.openSession(ctx, user)
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Credential string `json:"credential"`
	Password   string `json:"password"`
}

/*
Login verifies a credential (email or username) and password.

Every failure returns the same 401 so callers cannot tell which accounts exist.
*/
func (service *Service) Login(ctx context.Context, in LoginInput) (*LoginSession, error) {
	in.Credential = strings.TrimSpace(in.Credential)

	validator := &validate.Validator{}
	validator.Required(FieldCredential, in.Credential)
	validator.Required(FieldPassword, in.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByCredential(ctx, in.Credential)
	if err != nil {
		if apperr.HasStatus(err, http.StatusNotFound) {
			return nil, apperr.Unauthorized(MsgInvalidCredentials)
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(in.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	service.logger.Info("user_logged_in", slog.Int64("user_id", user.ID))
	return service.openSession(ctx, user)
}

// Logout deletes the server-side session. It is idempotent.
func (service *Service) Logout(ctx context.Context, claims *sec.SessionClaims) error {
	if claims == nil {
		return nil
	}
	if err := service.sessionRepository.Delete(ctx, claims.SessionID()); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}
	service.logger.Info("user_logged_out", slog.Int64("user_id", claims.UserID))
	return nil
}

// # Session Management

/*
ResolveSession verifies a cookie token and checks that its session is live.

A valid signature is not enough: the session must still exist in the store
and belong to the same user.
*/
func (service *Service) ResolveSession(ctx context.Context, token string) (*sec.SessionClaims, error) {
	claims, err := service.tokenProvider.VerifySessionToken(token)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid session")
	}

	userID, err := service.sessionRepository.Get(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	if userID != claims.UserID {
		return nil, apperr.Unauthorized("Invalid session")
	}
	return claims, nil
}

// CurrentUser returns the user behind a session, or nil when anonymous.
func (service *Service) CurrentUser(ctx context.Context, claims *sec.SessionClaims) (*User, error) {
	if claims == nil {
		return nil, nil
	}
	return service.userRepository.FindByID(ctx, claims.UserID)
}

func (service *Service) openSession(ctx context.Context, user *User) (*LoginSession, error) {
	sessionID, err := sec.GenerateSecureToken(SessionIDLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_id_failed: %w", err)
	}

	if err := service.sessionRepository.Set(ctx, sessionID, user.ID, service.sessionTTL); err != nil {
		return nil, err
	}

	token, err := service.tokenProvider.IssueSessionToken(sessionID, user.ID, user.Username, service.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: service.now().Add(service.sessionTTL),
		User:      user,
	}, nil
}
