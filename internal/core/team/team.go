// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package team manages workspaces and their memberships.

It handles the lifecycle of a team, from discovery and joining to scheme-based
role management of its members.

# Core Responsibility

  - Workspace: Defines the [Team] entity and its metadata.
  - Membership: Manages [Member] associations and their scheme flags.
  - Authorization: Scheme flags feed role resolution for team-scoped access.

This package provides the organizational context for channels in the core domain.
*/
package team

import (
	"strings"
	"time"

	"github.com/loqui-im/loqui/internal/platform/sec"
)

// # Core Entities

// Team represents a named workspace that groups channels and members.
type Team struct {
	ID          string     `json:"id"` // UUIDv7
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description *string    `json:"description,omitempty"`
	IsOpen      bool       `json:"is_open"` // Open teams accept any verified user
	MemberCount int        `json:"member_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-"`
}

// Member represents a user's affiliation within a specific team.
//
// SchemeUser and SchemeAdmin are the source of truth for team-scoped
// authority. Roles carries any explicitly granted tokens on top of the
// scheme flags.
type Member struct {
	TeamID      string     `json:"team_id"`
	UserID      string     `json:"user_id"`
	Username    string     `json:"username"` // Denormalized for roster views
	Roles       string     `json:"roles"`
	SchemeUser  bool       `json:"scheme_user"`
	SchemeAdmin bool       `json:"scheme_admin"`
	JoinedAt    time.Time  `json:"joined_at"`
	DeletedAt   *time.Time `json:"-"`
}

// EffectiveRoles returns the member's role tokens with the scheme flags
// folded in, without duplicating tokens already granted explicitly.
func (m *Member) EffectiveRoles() string {
	tokens := strings.Fields(m.Roles)
	has := func(target string) bool {
		for _, token := range tokens {
			if token == target {
				return true
			}
		}
		return false
	}

	if m.SchemeUser && !has(sec.RoleTeamUser) {
		tokens = append(tokens, sec.RoleTeamUser)
	}
	if m.SchemeAdmin && !has(sec.RoleTeamAdmin) {
		tokens = append(tokens, sec.RoleTeamAdmin)
	}

	return strings.Join(tokens, " ")
}

// # Search & Filtering

// Filter holds parameters for searching and listing teams.
type Filter struct {
	Query  string `json:"q"`
	IsOpen *bool  `json:"is_open"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldSlug        = "slug"
	FieldUserID      = "user_id"
	FieldMessage     = "message"
)
