// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package profile implements the user directory of the Loqui workspace.

It covers everything a messaging client needs to present people: resolving
display names according to the viewer's preference, filtering profile lists
while the user types into a mention box, and narrowing directory listings by
role for the system console.

# Architecture

  - Resolution: Pure display-name logic over [auth.User] records.
  - Matching: Prefix matching across username segments, names, and email.
  - Classification: Role-token intersection for console user filters.

All matching logic in this package is pure and allocation-light; persistence
lives behind the [Repository] contract.
*/
package profile

import (
	"strings"

	"github.com/loqui-im/loqui/internal/users/auth"
)

// # Display Preferences

// Display preference values select which fields to prefer when rendering a
// user's name. Unrecognized values fall back to the username.
const (
	// DisplayPreferNickname shows the nickname, falling back to the full
	// name and then the username.
	DisplayPreferNickname = "nickname_full_name"

	// DisplayPreferFullName shows "first last", falling back to the username.
	DisplayPreferFullName = "full_name"

	// DisplayPreferUsername always shows the username.
	DisplayPreferUsername = "username"
)

// FallbackDisplayName is rendered when no user record is available at all.
const FallbackDisplayName = "Someone"

// # Name Resolution

// DisplayUsername resolves the human-readable name for a user under the
// given display preference.
//
// A nil user yields [FallbackDisplayName] when useFallback is true and the
// empty string otherwise. An empty nickname falls through to the full name;
// an empty full name falls through to the username.
func DisplayUsername(user *auth.User, preference string, useFallback bool) string {
	if user == nil {
		if useFallback {
			return FallbackDisplayName
		}
		return ""
	}

	name := ""
	switch preference {
	case DisplayPreferNickname:
		name = user.Nickname
		if name == "" {
			name = FullName(user)
		}
	case DisplayPreferFullName:
		name = FullName(user)
	}

	if name == "" {
		name = user.Username
	}

	return name
}

// FullName joins the user's first and last name with a single space,
// trimming the result so a missing half leaves no stray whitespace.
func FullName(user *auth.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

// # Scheme Membership

// Membership captures a user's scheme-level standing within a team or
// channel, independent of their system-wide roles.
type Membership struct {
	UserID      string `json:"user_id"`
	SchemeUser  bool   `json:"scheme_user"`
	SchemeAdmin bool   `json:"scheme_admin"`
}
