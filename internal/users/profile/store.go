// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile

import (
	"context"

	"github.com/loqui-im/loqui/internal/users/auth"
)

// # Directory Data Access

// Repository defines the data access contract for the user directory.
type Repository interface {

	/*
		List returns a page of active users ordered by username, plus the
		total count.

		Parameters:
		  - context: context.Context
		  - limit, offset: int

		Returns:
		  - []*auth.User: Page of users
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*auth.User, int, error)

	/*
		SearchCandidates returns active users whose identity fields contain
		the term, scoped to a team or channel when those IDs are non-empty.

		This is a broad SQL prefilter; precise prefix semantics are applied
		in memory by [FilterMatchingTerm].

		Parameters:
		  - context: context.Context
		  - term: string (already stripped of mention syntax)
		  - teamID, channelID: string (optional scope, "" = workspace-wide)
		  - limit: int

		Returns:
		  - []*auth.User: Candidate profiles, ordered by username
		  - error: Database retrieval failures
	*/
	SearchCandidates(context context.Context, term, teamID, channelID string, limit int) ([]*auth.User, error)

	/*
		FindByID retrieves a user by their UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *auth.User: Hydrated entity
		  - error: apperr.NotFound if missing or deleted
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		FindByUsername retrieves a user by their unique username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *auth.User: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByUsername(context context.Context, username string) (*auth.User, error)

	// # Scheme Memberships

	/*
		TeamMemberships returns the scheme membership of every user in a
		team, keyed by user ID.

		Parameters:
		  - context: context.Context
		  - teamID: string

		Returns:
		  - map[string]*Membership: Membership by user ID
		  - error: Retrieval failures
	*/
	TeamMemberships(context context.Context, teamID string) (map[string]*Membership, error)

	/*
		ChannelMemberships returns the scheme membership of every user in a
		channel, keyed by user ID.

		Parameters:
		  - context: context.Context
		  - channelID: string

		Returns:
		  - map[string]*Membership: Membership by user ID
		  - error: Retrieval failures
	*/
	ChannelMemberships(context context.Context, channelID string) (map[string]*Membership, error)
}
