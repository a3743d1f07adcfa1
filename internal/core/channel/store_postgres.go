// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package channel

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/loqui-im/loqui/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed channel store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Channel Retrieval

/*
List returns a filtered and paginated list of channels.

Description: Scopes to a team when requested and uses COUNT(*) OVER() for
total metadata.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Channel: Slice of matching channels
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Channel, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			id, teamid, name, slug, topic, type, createdat, updatedat,
			COUNT(*) OVER() as total
		FROM channels.channel
		WHERE deletedat IS NULL
	`)

	args := []any{}
	argID := 1

	if filter.TeamID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND teamid = $%d", argID))
		args = append(args, filter.TeamID)
		argID++
	}

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.Type != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND type = $%d", argID))
		args = append(args, *filter.Type)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_channels")
	}
	defer rows.Close()

	var channels []*Channel
	var total int
	for rows.Next() {
		channel := &Channel{}
		err := rows.Scan(
			&channel.ID, &channel.TeamID, &channel.Name, &channel.Slug, &channel.Topic,
			&channel.Type, &channel.CreatedAt, &channel.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_channel")
		}
		channels = append(channels, channel)
	}

	return channels, total, nil
}

/*
FindByID retrieves a single channel record by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Channel: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Channel, error) {
	const query = `
		SELECT id, teamid, name, slug, topic, type, createdat, updatedat
		FROM channels.channel
		WHERE id = $1 AND deletedat IS NULL
	`
	channel := &Channel{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&channel.ID, &channel.TeamID, &channel.Name, &channel.Slug, &channel.Topic,
		&channel.Type, &channel.CreatedAt, &channel.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_channel_by_id")
	}
	return channel, nil
}

/*
FindBySlug retrieves a channel within a team by its unique slug.

Parameters:
  - context: context.Context
  - teamID: string
  - slug: string

Returns:
  - *Channel: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, teamID, slug string) (*Channel, error) {
	const query = `
		SELECT id, teamid, name, slug, topic, type, createdat, updatedat
		FROM channels.channel
		WHERE teamid = $1 AND slug = $2 AND deletedat IS NULL
	`
	channel := &Channel{}
	err := repository.db.QueryRow(context, query, teamID, slug).Scan(
		&channel.ID, &channel.TeamID, &channel.Name, &channel.Slug, &channel.Topic,
		&channel.Type, &channel.CreatedAt, &channel.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_channel_by_slug")
	}
	return channel, nil
}

// # Channel Mutation

/*
Create inserts a new channel record.

Parameters:
  - context: context.Context
  - channel: *Channel

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, channel *Channel) error {
	const query = `
		INSERT INTO channels.channel (
			id, teamid, name, slug, topic, type, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING createdat, updatedat
	`
	err := repository.db.QueryRow(context, query,
		channel.ID, channel.TeamID, channel.Name, channel.Slug, channel.Topic, channel.Type,
	).Scan(&channel.CreatedAt, &channel.UpdatedAt)

	return dberr.Wrap(err, "create_channel")
}

/*
Update modifies channel metadata fields.

Parameters:
  - context: context.Context
  - channel: *Channel

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, channel *Channel) error {
	const query = `
		UPDATE channels.channel
		SET topic = $2, updatedat = NOW()
		WHERE id = $1 AND deletedat IS NULL
		RETURNING updatedat
	`
	err := repository.db.QueryRow(context, query, channel.ID, channel.Topic).Scan(&channel.UpdatedAt)
	return dberr.Wrap(err, "update_channel")
}

/*
SoftDelete flags a channel as deleted.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE channels.channel SET deletedat = NOW() WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_channel")
}

// # Membership Implementation

/*
ListMembers retrieves all active users and their scheme flags.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - []*Member: List of affiliated users
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListMembers(context context.Context, channelID string) ([]*Member, error) {
	const query = `
		SELECT m.channelid, m.userid, u.username, m.roles, m.schemeuser, m.schemeadmin, m.joinedat
		FROM channels.member m
		JOIN users.account u ON m.userid = u.id
		WHERE m.channelid = $1 AND m.deletedat IS NULL AND u.deletedat IS NULL
		ORDER BY m.joinedat ASC
	`
	rows, err := repository.db.Query(context, query, channelID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_channel_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		err := rows.Scan(
			&member.ChannelID, &member.UserID, &member.Username,
			&member.Roles, &member.SchemeUser, &member.SchemeAdmin, &member.JoinedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_channel_member")
		}
		members = append(members, member)
	}

	return members, nil
}

/*
FindMember retrieves a single active membership record.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string

Returns:
  - *Member: Hydrated membership
  - error: ErrNotFound or retrieval failures
*/
func (repository *PostgresRepository) FindMember(context context.Context, channelID, userID string) (*Member, error) {
	const query = `
		SELECT channelid, userid, roles, schemeuser, schemeadmin, joinedat
		FROM channels.member
		WHERE channelid = $1 AND userid = $2 AND deletedat IS NULL
	`
	member := &Member{}
	err := repository.db.QueryRow(context, query, channelID, userID).Scan(
		&member.ChannelID, &member.UserID, &member.Roles,
		&member.SchemeUser, &member.SchemeAdmin, &member.JoinedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_channel_member")
	}
	return member, nil
}

/*
AddMember inserts a new membership record.

Description: Re-joining a previously removed member clears the deletedat flag
instead of inserting a duplicate row.

Parameters:
  - context: context.Context
  - member: *Member

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) AddMember(context context.Context, member *Member) error {
	const query = `
		INSERT INTO channels.member (channelid, userid, roles, schemeuser, schemeadmin, joinedat)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (channelid, userid) DO UPDATE SET
			roles = EXCLUDED.roles,
			schemeuser = EXCLUDED.schemeuser,
			schemeadmin = EXCLUDED.schemeadmin,
			deletedat = NULL
		RETURNING joinedat
	`
	err := repository.db.QueryRow(context, query,
		member.ChannelID, member.UserID, member.Roles, member.SchemeUser, member.SchemeAdmin,
	).Scan(&member.JoinedAt)
	return dberr.Wrap(err, "add_channel_member")
}

/*
UpdateMemberScheme modifies a member's scheme flags.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string
  - schemeUser: bool
  - schemeAdmin: bool

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) UpdateMemberScheme(context context.Context, channelID, userID string, schemeUser, schemeAdmin bool) error {
	const query = `
		UPDATE channels.member SET schemeuser = $3, schemeadmin = $4
		WHERE channelid = $1 AND userid = $2 AND deletedat IS NULL
	`
	_, err := repository.db.Exec(context, query, channelID, userID, schemeUser, schemeAdmin)
	return dberr.Wrap(err, "update_channel_member_scheme")
}

/*
RemoveMember soft-deletes a membership link.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) RemoveMember(context context.Context, channelID, userID string) error {
	const query = `UPDATE channels.member SET deletedat = NOW() WHERE channelid = $1 AND userid = $2`
	_, err := repository.db.Exec(context, query, channelID, userID)
	return dberr.Wrap(err, "remove_channel_member")
}
