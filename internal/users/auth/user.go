// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and logic for
authentication, authorization, and account lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/loqui-im/loqui/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Loqui workspace.
//
// Roles is a space-separated string of role tokens (see
// [sec.RoleSystemUser] and friends); team- and channel-scoped roles live on
// the respective membership records, not here.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Explicitly omitted from JSON for security.

	// Naming fields consumed by display-name resolution. All except
	// Username may be empty.
	Nickname  string `json:"nickname"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`

	Position   string    `json:"position,omitempty"`
	Roles      string    `json:"roles"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsGuest reports whether the user holds the restricted guest role.
func (u *User) IsGuest() bool {
	return sec.IsGuest(u.Roles)
}

// IsSystemAdmin reports whether the user holds any admin-tier system role.
func (u *User) IsSystemAdmin() bool {
	return sec.IncludesAnAdminRole(u.Roles)
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldNickname        = "nickname"
	FieldFirstName       = "first_name"
	FieldLastName        = "last_name"
	FieldLogin           = "login"
	FieldToken           = "token"
	FieldCurrentPassword = "current_password"
	FieldNewPassword     = "new_password"
	FieldAccessToken     = "access_token"
	FieldTokenType       = "token_type"
	FieldExpiresIn       = "expires_in"
	FieldMessage         = "message"
)
