// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package sec

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// GenerateSecureToken returns a URL-safe random token of byteLength entropy.
//
// Used for refresh tokens, password reset tokens, and email verification
// tokens. The raw value is sent to the client; only its hash is stored.
func GenerateSecureToken(byteLength int) (string, error) {
	raw := make([]byte, byteLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
//
// Tokens are stored hashed so that a database leak does not expose live
// credentials. SHA-256 (not bcrypt) is sufficient here because the input is
// already high-entropy random data.
func HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))
	return hex.EncodeToString(digest[:])
}
