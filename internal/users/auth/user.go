// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user accounts and cookie sessions.

# Architecture

  - Users live in PostgreSQL; the password hash never leaves this package.
  - Sessions live in Redis as session:<id> -> user id with a TTL.
  - The browser holds an HS256 token whose jti is the session id, so a token
    stays valid only while its Redis key exists.
*/
package auth

import "time"

// # Domain Entities

// User is a registered member.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginSession is the result of a successful signup or login.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// # Field Identifiers

const (
	FieldUsername   = "username"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldCredential = "credential"
	FieldCSRFToken  = "csrf_token"
)
