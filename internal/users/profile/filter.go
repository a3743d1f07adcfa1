// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile

import (
	"strings"

	"github.com/loqui-im/loqui/internal/platform/sec"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/pkg/suggest"
)

// # Term Matching

// FilterMatchingTerm returns the profiles whose identity fields prefix-match
// term, preserving the original order.
//
// A leading '@' is stripped (mention syntax), and all comparisons are
// case-insensitive. The empty term matches every profile. The input slice is
// never mutated; a fresh slice is returned.
func FilterMatchingTerm(profiles []*auth.User, term string) []*auth.User {
	prefix := strings.ToLower(strings.TrimPrefix(term, "@"))

	matched := make([]*auth.User, 0, len(profiles))
	for _, user := range profiles {
		if MatchesTerm(user, prefix) {
			matched = append(matched, user)
		}
	}

	return matched
}

// MatchesTerm reports whether a single profile matches an already-lowercased
// search prefix.
//
// The candidate strings tested, any one of which is sufficient:
//
//   - the username and its separator-split suffixes ("jane.doe" also answers
//     to "doe"), expanded via [suggest.SplitByMultiple];
//   - the first name, the last name, and "first last" (so a prefix may span
//     both fields with a space);
//   - the nickname, prefix only: a term buried mid-nickname never matches;
//   - the email, its local part, and its domain part.
//
// Empty candidates never match, so users with sparse profiles don't match
// everything.
func MatchesTerm(user *auth.User, prefix string) bool {
	if prefix == "" {
		return true
	}

	candidates := suggest.SplitByMultiple(strings.ToLower(user.Username), suggest.SplitChars)

	firstName := strings.ToLower(user.FirstName)
	lastName := strings.ToLower(user.LastName)
	candidates = append(candidates, firstName, lastName, strings.TrimSpace(firstName+" "+lastName))

	candidates = append(candidates, strings.ToLower(user.Nickname))

	email := strings.ToLower(user.Email)
	candidates = append(candidates, email)
	if at := strings.IndexByte(email, '@'); at >= 0 {
		candidates = append(candidates, email[:at], email[at+1:])
	}

	for _, candidate := range candidates {
		if candidate != "" && strings.HasPrefix(candidate, prefix) {
			return true
		}
	}

	return false
}

// # Role Filtering

// ApplyRolesFilters reports whether a user qualifies under a required-roles
// allow-list, given their optional scheme membership in the team or channel
// being inspected.
//
// Matching is strict token intersection between the user's effective role
// set and requiredRoles. The effective set is the user's own admin-tier
// system roles, the generic system_user tier for any non-guest, the guest
// tier for guests, and the team/channel tier derived from the membership's
// scheme flags. There is no hierarchy: an admin-tier token only matches if
// it is literally present in requiredRoles.
func ApplyRolesFilters(user *auth.User, requiredRoles []string, membership *Membership) bool {
	required := make(map[string]struct{}, len(requiredRoles))
	for _, role := range requiredRoles {
		required[role] = struct{}{}
	}

	for _, role := range strings.Fields(user.Roles) {
		if !sec.IsSystemAdminRole(role) {
			continue
		}
		if _, ok := required[role]; ok {
			return true
		}
	}

	isGuest := user.IsGuest()

	if _, ok := required[sec.RoleSystemUser]; ok && !isGuest {
		return true
	}
	if _, ok := required[sec.RoleSystemGuest]; ok && isGuest {
		return true
	}

	if membership != nil {
		_, wantsTeamAdmin := required[sec.RoleTeamAdmin]
		_, wantsChannelAdmin := required[sec.RoleChannelAdmin]
		if membership.SchemeAdmin && (wantsTeamAdmin || wantsChannelAdmin) {
			return true
		}

		_, wantsTeamUser := required[sec.RoleTeamUser]
		_, wantsChannelUser := required[sec.RoleChannelUser]
		if membership.SchemeUser && !membership.SchemeAdmin && (wantsTeamUser || wantsChannelUser) {
			return true
		}
	}

	return false
}
