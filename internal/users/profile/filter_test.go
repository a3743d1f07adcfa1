// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/platform/sec"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/internal/users/profile"
)

/*
TestFilterMatchingTerm exercises prefix matching across every identity field
a profile exposes, including separator-split username suffixes.
*/
func TestFilterMatchingTerm(t *testing.T) {
	jane := &auth.User{
		Username:  "jane.doe",
		Nickname:  "Janey",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@loqui.im",
	}
	split := &auth.User{
		Username: "split_10-10",
		Email:    "split@loqui.im",
	}
	sparse := &auth.User{Username: "ghost"}

	profiles := []*auth.User{jane, split, sparse}

	tests := []struct {
		name string
		term string
		want []*auth.User
	}{
		{"empty_term_matches_all", "", profiles},
		{"username_prefix", "jane", []*auth.User{jane}},
		{"mention_syntax_stripped", "@jane", []*auth.User{jane}},
		{"username_suffix_after_dot", "doe", []*auth.User{jane}},
		{"username_suffix_after_underscore", "10-10", []*auth.User{split}},
		{"username_suffix_after_dash", "10", []*auth.User{split}},
		{"case_insensitive", "JANE", []*auth.User{jane}},
		{"first_name", "ja", []*auth.User{jane}},
		{"last_name", "do", []*auth.User{jane}},
		{"full_name_with_space", "jane d", []*auth.User{jane}},
		{"nickname_prefix", "janey", []*auth.User{jane}},
		{"email_local_part", "jane@", []*auth.User{jane}},
		{"email_domain", "loqui.im", []*auth.User{jane, split}},
		{"no_match", "zz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.FilterMatchingTerm(profiles, tt.term)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Username, got[i].Username)
			}
		})
	}
}

/*
TestFilterMatchingTerm_NicknameMidMatch confirms a term buried in the middle
of a nickname never matches. Only prefixes count.
*/
func TestFilterMatchingTerm_NicknameMidMatch(t *testing.T) {
	user := &auth.User{Username: "ghost", Nickname: "somenickname"}

	got := profile.FilterMatchingTerm([]*auth.User{user}, "nick")
	assert.Empty(t, got)

	got = profile.FilterMatchingTerm([]*auth.User{user}, "some")
	assert.Len(t, got, 1)
}

/*
TestFilterMatchingTerm_SparseProfile ensures empty identity fields on a user
never match a non-empty term.
*/
func TestFilterMatchingTerm_SparseProfile(t *testing.T) {
	user := &auth.User{Username: "lonely"}

	assert.Empty(t, profile.FilterMatchingTerm([]*auth.User{user}, "x"))
	assert.Len(t, profile.FilterMatchingTerm([]*auth.User{user}, "lone"), 1)
}

/*
TestApplyRolesFilters covers strict role-token intersection for system roles
and scheme-derived team and channel tiers.
*/
func TestApplyRolesFilters(t *testing.T) {
	regular := &auth.User{Roles: sec.RoleSystemUser}
	admin := &auth.User{Roles: sec.RoleSystemUser + " " + sec.RoleSystemAdmin}
	guest := &auth.User{Roles: sec.RoleSystemGuest}
	manager := &auth.User{Roles: sec.RoleSystemUser + " " + sec.RoleSystemUserManager}

	plainMember := &profile.Membership{SchemeUser: true}
	adminMember := &profile.Membership{SchemeUser: true, SchemeAdmin: true}

	tests := []struct {
		name       string
		user       *auth.User
		required   []string
		membership *profile.Membership
		want       bool
	}{
		{"system_admin_matches", admin, []string{sec.RoleSystemAdmin}, nil, true},
		{"system_user_matches_non_guest", regular, []string{sec.RoleSystemUser}, nil, true},
		{"system_user_excludes_guest", guest, []string{sec.RoleSystemUser}, nil, false},
		{"guest_matches_guest_filter", guest, []string{sec.RoleSystemGuest}, nil, true},
		{"non_guest_fails_guest_filter", regular, []string{sec.RoleSystemGuest}, nil, false},
		{"no_hierarchy_admin_is_not_user_manager", admin, []string{sec.RoleSystemUserManager}, nil, false},
		{"user_manager_matches", manager, []string{sec.RoleSystemUserManager}, nil, true},
		{"team_admin_via_scheme", regular, []string{sec.RoleTeamAdmin}, adminMember, true},
		{"channel_admin_via_scheme", regular, []string{sec.RoleChannelAdmin}, adminMember, true},
		{"team_user_via_scheme", regular, []string{sec.RoleTeamUser}, plainMember, true},
		{"team_user_excludes_scheme_admin", regular, []string{sec.RoleTeamUser}, adminMember, false},
		{"team_filter_without_membership", regular, []string{sec.RoleTeamAdmin}, nil, false},
		{"empty_required_matches_nothing", admin, nil, adminMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := profile.ApplyRolesFilters(tt.user, tt.required, tt.membership)
			assert.Equal(t, tt.want, got)
		})
	}
}
