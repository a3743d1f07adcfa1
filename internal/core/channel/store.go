// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package channel

import "context"

// # Channel Data Access

// Repository defines the data access contract for channels and memberships.
type Repository interface {

	/*
		List returns a filtered, paginated slice of channels and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Team scope, search query, type)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Channel: Slice of matching channels
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Channel, int, error)

	/*
		FindByID retrieves a channel by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Channel: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Channel, error)

	/*
		FindBySlug retrieves a channel within a team by its slug.

		Parameters:
		  - context: context.Context
		  - teamID: string
		  - slug: string

		Returns:
		  - *Channel: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, teamID, slug string) (*Channel, error)

	/*
		Create persists a new channel to the store.

		Parameters:
		  - context: context.Context
		  - channel: *Channel

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, channel *Channel) error

	/*
		Update modifies an existing channel's metadata.

		Parameters:
		  - context: context.Context
		  - channel: *Channel

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, channel *Channel) error

	/*
		SoftDelete marks a channel as deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	SoftDelete(context context.Context, id string) error

	// # Membership Management

	/*
		ListMembers returns all active users affiliated with a channel.

		Parameters:
		  - context: context.Context
		  - channelID: string

		Returns:
		  - []*Member: List of affiliated users
		  - error: Retrieval failures
	*/
	ListMembers(context context.Context, channelID string) ([]*Member, error)

	/*
		FindMember retrieves a single active membership record.

		Parameters:
		  - context: context.Context
		  - channelID: string
		  - userID: string

		Returns:
		  - *Member: Hydrated membership
		  - error: ErrNotFound if the user is not a member
	*/
	FindMember(context context.Context, channelID, userID string) (*Member, error)

	/*
		AddMember links a user to a channel with the given scheme flags.

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
		  - channelID: string
		  - userID: string
		  - schemeUser: bool
		  - schemeAdmin: bool

		Returns:
		  - error: Persistence failures
	*/
	UpdateMemberScheme(context context.Context, channelID, userID string, schemeUser, schemeAdmin bool) error

	/*
		RemoveMember terminates a user's affiliation with a channel.

		Parameters:
		  - context: context.Context
		  - channelID: string
		  - userID: string

		Returns:
		  - error: Persistence failures
	*/
	RemoveMember(context context.Context, channelID, userID string) error
}
