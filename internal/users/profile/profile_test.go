// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/internal/users/profile"
)

/*
TestDisplayUsername verifies name resolution under each display preference,
including fallthrough when the preferred fields are empty.
*/
func TestDisplayUsername(t *testing.T) {
	full := &auth.User{
		Username:  "jane.doe",
		Nickname:  "JD",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	noNickname := &auth.User{
		Username:  "jane.doe",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	sparse := &auth.User{Username: "jane.doe"}

	tests := []struct {
		name       string
		user       *auth.User
		preference string
		want       string
	}{
		{"nickname_preferred", full, profile.DisplayPreferNickname, "JD"},
		{"nickname_falls_to_full_name", noNickname, profile.DisplayPreferNickname, "Jane Doe"},
		{"nickname_falls_to_username", sparse, profile.DisplayPreferNickname, "jane.doe"},
		{"full_name_preferred", full, profile.DisplayPreferFullName, "Jane Doe"},
		{"full_name_falls_to_username", sparse, profile.DisplayPreferFullName, "jane.doe"},
		{"username_preferred", full, profile.DisplayPreferUsername, "jane.doe"},
		{"unknown_preference_uses_username", full, "something_else", "jane.doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.DisplayUsername(tt.user, tt.preference, true)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestDisplayUsername_NilUser covers the missing-record cases, where the
fallback flag decides between a placeholder and the empty string.
*/
func TestDisplayUsername_NilUser(t *testing.T) {
	assert.Equal(t, profile.FallbackDisplayName, profile.DisplayUsername(nil, profile.DisplayPreferFullName, true))
	assert.Equal(t, "", profile.DisplayUsername(nil, profile.DisplayPreferFullName, false))
}

/*
TestFullName checks the joining and trimming of partial names.
*/
func TestFullName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{"both_names", "Jane", "Doe", "Jane Doe"},
		{"first_only", "Jane", "", "Jane"},
		{"last_only", "", "Doe", "Doe"},
		{"neither", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &auth.User{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.want, profile.FullName(user))
		})
	}
}
