// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loqui-im/loqui/internal/platform/sec"
)

/*
TestIncludesAnAdminRole checks admin-tier detection over roles strings.
*/
func TestIncludesAnAdminRole(t *testing.T) {
	tests := []struct {
		name  string
		roles string
		want  bool
	}{
		{"system_admin_among_tokens", "foo system_admin bar", true},
		{"user_manager", "system_user system_user_manager", true},
		{"read_only_admin", "system_read_only_admin", true},
		{"system_manager", "system_manager", true},
		{"plain_user", "system_user", false},
		{"unknown_tokens_only", "foo bar", false},
		{"guest", "system_guest", false},
		{"empty", "", false},
		{"team_admin_is_not_system_admin", "team_admin channel_admin", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.IncludesAnAdminRole(tt.roles))
		})
	}
}

/*
TestHasRole checks exact token membership.
*/
func TestHasRole(t *testing.T) {
	assert.True(t, sec.HasRole("system_user team_admin", sec.RoleTeamAdmin))
	assert.False(t, sec.HasRole("system_user team_admin", sec.RoleChannelAdmin))

	// Token matching is exact, not substring based.
	assert.False(t, sec.HasRole("system_user_manager", sec.RoleSystemUser))
}

/*
TestIsGuest checks guest classification.
*/
func TestIsGuest(t *testing.T) {
	assert.True(t, sec.IsGuest("system_guest"))
	assert.False(t, sec.IsGuest("system_user"))
	assert.False(t, sec.IsGuest(""))
}
