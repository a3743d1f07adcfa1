// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package team

import "context"

// # Team Data Access

// Repository defines the data access contract for teams and memberships.
type Repository interface {

	/*
		List returns a filtered, paginated slice of teams and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Search query, openness, etc.)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Team: Slice of matching teams
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Team, int, error)

	/*
		FindByID retrieves a team by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Team: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Team, error)

	/*
		FindBySlug retrieves a team by its human-readable identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Team: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Team, error)

	/*
		Create persists a new team to the store.

		Parameters:
		  - context: context.Context
		  - team: *Team

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, team *Team) error

	/*
		Update modifies an existing team's metadata.

		Parameters:
		  - context: context.Context
		  - team: *Team

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, team *Team) error

	/*
		SoftDelete marks a team as deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error

	// # Membership Management

	/*
		ListMembers returns all active users affiliated with a team.

		Parameters:
		  - context: context.Context
		  - teamID: string

		Returns:
		  - []*Member: List of affiliated users
		  - error: Retrieval failures
	*/
	ListMembers(context context.Context, teamID string) ([]*Member, error)

	/*
		FindMember retrieves a single active membership record.

		Parameters:
		  - context: context.Context
		  - teamID: string
		  - userID: string

		Returns:
		  - *Member: Hydrated membership
		  - error: ErrNotFound if the user is not a member
	*/
	FindMember(context context.Context, teamID, userID string) (*Member, error)

	/*
		AddMember links a user to a team with the given scheme flags.

		Parameters:
		  - context: context.Context
		  - member: *Member

		Returns:
		  - error: Persistence failures
	*/
	AddMember(context context.Context, member *Member) error

	/*
		UpdateMemberScheme changes a member's scheme flags.

		Parameters:
		  - context: context.Context
		  - teamID: string
		  - userID: string
		  - schemeUser: bool
		  - schemeAdmin: bool

		Returns:
		  - error: Persistence failures
	*/
	UpdateMemberScheme(context context.Context, teamID, userID string, schemeUser, schemeAdmin bool) error

	/*
		RemoveMember terminates a user's affiliation with a team.

		Parameters:
		  - context: context.Context
		  - teamID: string
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	RemoveMember(context context.Context, teamID, userID string) error
}
