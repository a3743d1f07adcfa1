// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package sec

import "strings"

// # Role Tokens

// A user's authorization is a space-separated string of role tokens
// (e.g. "system_user team_admin"). Tokens are opaque identifiers; matching
// is always exact, never hierarchical.
const (
	// System-wide roles.
	RoleSystemUser          = "system_user"
	RoleSystemAdmin         = "system_admin"
	RoleSystemGuest         = "system_guest"
	RoleSystemUserManager   = "system_user_manager"
	RoleSystemReadOnlyAdmin = "system_read_only_admin"
	RoleSystemManager       = "system_manager"

	// Team-scoped roles.
	RoleTeamUser  = "team_user"
	RoleTeamAdmin = "team_admin"

	// Channel-scoped roles.
	RoleChannelUser  = "channel_user"
	RoleChannelAdmin = "channel_admin"
)

// systemAdminRoles is the fixed set of admin-tier system roles. Holding any
// one of these grants access to the system console.
var systemAdminRoles = map[string]struct{}{
	RoleSystemAdmin:         {},
	RoleSystemUserManager:   {},
	RoleSystemReadOnlyAdmin: {},
	RoleSystemManager:       {},
}

// # Role Classification

// IsSystemAdminRole reports whether a single token belongs to the admin tier.
func IsSystemAdminRole(role string) bool {
	_, ok := systemAdminRoles[role]
	return ok
}

// IncludesAnAdminRole reports whether a roles string contains at least one
// admin-tier system role. Unknown tokens are ignored.
func IncludesAnAdminRole(roles string) bool {
	for _, role := range strings.Fields(roles) {
		if IsSystemAdminRole(role) {
			return true
		}
	}
	return false
}

// HasRole reports whether a roles string contains the exact target token.
func HasRole(roles, target string) bool {
	for _, role := range strings.Fields(roles) {
		if role == target {
			return true
		}
	}
	return false
}

// IsGuest reports whether a roles string marks the user as an invited guest.
func IsGuest(roles string) bool {
	return HasRole(roles, RoleSystemGuest)
}
