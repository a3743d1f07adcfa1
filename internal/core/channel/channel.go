// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package channel manages conversation channels and their memberships.

It handles the lifecycle of a channel within a team, from creation and
discovery to scheme-based role management of its members.

# Core Responsibility

  - Conversation: Defines the [Channel] entity and its metadata.
  - Membership: Manages [Member] associations and their scheme flags.
  - Authorization: Scheme flags feed role resolution for channel-scoped access.
*/
package channel

import (
	"strings"
	"time"

	"github.com/loqui-im/loqui/internal/platform/sec"
)

// # Channel Enums

// Type discriminates channel visibility.
type Type string

const (
	TypeOpen    Type = "O" // Joinable by any team member
	TypePrivate Type = "P" // Invitation only
)

// # Core Entities

// Channel represents a named conversation inside a team.
type Channel struct {
	ID        string     `json:"id"` // UUIDv7
	TeamID    string     `json:"team_id"`
	Name      string     `json:"name"`
	Slug      string     `json:"slug"`
	Topic     *string    `json:"topic,omitempty"`
	Type      Type       `json:"type"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"`
}

// Member represents a user's affiliation within a specific channel.
//
// SchemeUser and SchemeAdmin are the source of truth for channel-scoped
// authority. Roles carries any explicitly granted tokens on top of the
// scheme flags.
type Member struct {
	ChannelID   string     `json:"channel_id"`
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

	if m.SchemeUser && !has(sec.RoleChannelUser) {
		tokens = append(tokens, sec.RoleChannelUser)
	}
	if m.SchemeAdmin && !has(sec.RoleChannelAdmin) {
		tokens = append(tokens, sec.RoleChannelAdmin)
	}

	return strings.Join(tokens, " ")
}

// # Search & Filtering

// Filter holds parameters for searching and listing channels.
type Filter struct {
	TeamID string `json:"team_id"`
	Query  string `json:"q"`
	Type   *Type  `json:"type"`
}

// # Field Identifiers

const (
	FieldName    = "name"
	FieldTopic   = "topic"
	FieldType    = "type"
	FieldTeamID  = "team_id"
	FieldMessage = "message"
)
