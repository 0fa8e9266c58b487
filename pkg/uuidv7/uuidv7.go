// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates time-ordered identifiers for request correlation.
// Sorting request IDs sorts them by arrival, which keeps log searches cheap.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. When the clock sequence cannot be read it
// falls back to a random UUIDv4 rather than failing the request.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
