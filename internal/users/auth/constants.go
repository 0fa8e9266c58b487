// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

// # Authentication Constraints

const (
	// SessionIDLength is the byte length of the random session id.
	SessionIDLength = 32

	MinUsernameLen = 3
	MaxUsernameLen = 40
	MaxEmailLen    = 255
	MinPasswordLen = 6
	MaxPasswordLen = 72

	// MsgInvalidCredentials is shared by every login failure to prevent enumeration.
	MsgInvalidCredentials = "Invalid credentials"
)
