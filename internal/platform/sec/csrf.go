// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strings"
)

// # CSRF Tokens
//
// A CSRF token is "<nonce>.<mac>" where mac = HMAC-SHA256(secret, nonce).
// The token travels twice: in the csrf_token cookie and in the X-CSRFToken
// header. The server accepts a mutation only when both copies are equal and
// the MAC verifies, so a forged cookie without the secret is useless.

// MintCSRFToken creates a new signed CSRF token.
func MintCSRFToken(secret []byte) (string, error) {
	nonce, err := GenerateSecureToken(24)
	if err != nil {
		return "", err
	}
	return nonce + "." + signCSRF(secret, nonce), nil
}

// VerifyCSRFToken reports whether token was minted with secret.
func VerifyCSRFToken(secret []byte, token string) bool {
	nonce, mac, ok := strings.Cut(token, ".")
	if !ok || nonce == "" || mac == "" {
		return false
	}
	return hmac.Equal([]byte(mac), []byte(signCSRF(secret, nonce)))
}

// EqualTokens compares two tokens in constant time.
func EqualTokens(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func signCSRF(secret []byte, nonce string) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(nonce))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}
