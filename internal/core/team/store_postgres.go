// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package team

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

// NewPostgresRepository constructs a PostgreSQL backed team store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Team Retrieval

/*
List returns a filtered and paginated list of teams.

Description: Uses trigram ILIKE for name search and COUNT(*) OVER() for total metadata.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Team: Slice of matching teams
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Team, int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT
			t.id, t.name, t.slug, t.description, t.isopen, t.createdat, t.updatedat,
			(SELECT COUNT(*) FROM teams.member m WHERE m.teamid = t.id AND m.deletedat IS NULL) as membercount,
			COUNT(*) OVER() as total
		FROM teams.team t
		WHERE t.deletedat IS NULL
	`)

	args := []any{}
	argID := 1

	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND t.name ILIKE $%d", argID))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	if filter.IsOpen != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND t.isopen = $%d", argID))
		args = append(args, *filter.IsOpen)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY t.name ASC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_teams")
	}
	defer rows.Close()

	var teams []*Team
	var total int
	for rows.Next() {
		team := &Team{}
		err := rows.Scan(
			&team.ID, &team.Name, &team.Slug, &team.Description, &team.IsOpen,
			&team.CreatedAt, &team.UpdatedAt, &team.MemberCount, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_team")
		}
		teams = append(teams, team)
	}

	return teams, total, nil
}

/*
FindByID retrieves a single team record by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Team: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Team, error) {
	const query = `
		SELECT id, name, slug, description, isopen, createdat, updatedat
		FROM teams.team
		WHERE id = $1 AND deletedat IS NULL
	`
	team := &Team{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&team.ID, &team.Name, &team.Slug, &team.Description, &team.IsOpen,
		&team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_by_id")
	}
	return team, nil
}

/*
FindBySlug retrieves a team by its unique URL slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Team: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Team, error) {
	const query = `
		SELECT id, name, slug, description, isopen, createdat, updatedat
		FROM teams.team
		WHERE slug = $1 AND deletedat IS NULL
	`
	team := &Team{}
	err := repository.db.QueryRow(context, query, slug).Scan(
		&team.ID, &team.Name, &team.Slug, &team.Description, &team.IsOpen,
		&team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_by_slug")
	}
	return team, nil
}

// # Team Mutation

/*
Create inserts a new team record.

Parameters:
  - context: context.Context
  - team: *Team

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, team *Team) error {
	const query = `
		INSERT INTO teams.team (
			id, name, slug, description, isopen, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING createdat, updatedat
	`
	err := repository.db.QueryRow(context, query,
		team.ID, team.Name, team.Slug, team.Description, team.IsOpen,
	).Scan(&team.CreatedAt, &team.UpdatedAt)

	return dberr.Wrap(err, "create_team")
}

/*
Update modifies team metadata fields.

Parameters:
  - context: context.Context
  - team: *Team

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, team *Team) error {
	const query = `
		UPDATE teams.team
		SET description = $2, isopen = $3, updatedat = NOW()
		WHERE id = $1 AND deletedat IS NULL
		RETURNING updatedat
	`
	err := repository.db.QueryRow(context, query, team.ID, team.Description, team.IsOpen).Scan(&team.UpdatedAt)
	return dberr.Wrap(err, "update_team")
}

/*
SoftDelete flags a team as deleted.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) SoftDelete(context context.Context, id string) error {
	const query = `UPDATE teams.team SET deletedat = NOW() WHERE id = $1`
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_team")
}

// # Membership Implementation

/*
ListMembers retrieves all active users and their scheme flags.

Parameters:
  - context: context.Context
  - teamID: string

Returns:
  - []*Member: List of affiliated users
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ListMembers(context context.Context, teamID string) ([]*Member, error) {
	const query = `
		SELECT m.teamid, m.userid, u.username, m.roles, m.schemeuser, m.schemeadmin, m.joinedat
		FROM teams.member m
		JOIN users.account u ON m.userid = u.id
		WHERE m.teamid = $1 AND m.deletedat IS NULL AND u.deletedat IS NULL
		ORDER BY m.joinedat ASC
	`
	rows, err := repository.db.Query(context, query, teamID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_team_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		err := rows.Scan(
			&member.TeamID, &member.UserID, &member.Username,
			&member.Roles, &member.SchemeUser, &member.SchemeAdmin, &member.JoinedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_team_member")
		}
		members = append(members, member)
	}

	return members, nil
}

/*
FindMember retrieves a single active membership record.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string

Returns:
  - *Member: Hydrated membership
  - error: ErrNotFound or retrieval failures
*/
func (repository *PostgresRepository) FindMember(context context.Context, teamID, userID string) (*Member, error) {
	const query = `
		SELECT teamid, userid, roles, schemeuser, schemeadmin, joinedat
		FROM teams.member
		WHERE teamid = $1 AND userid = $2 AND deletedat IS NULL
	`
	member := &Member{}
	err := repository.db.QueryRow(context, query, teamID, userID).Scan(
		&member.TeamID, &member.UserID, &member.Roles,
		&member.SchemeUser, &member.SchemeAdmin, &member.JoinedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_team_member")
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
		INSERT INTO teams.member (teamid, userid, roles, schemeuser, schemeadmin, joinedat)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (teamid, userid) DO UPDATE SET
			roles = EXCLUDED.roles,
			schemeuser = EXCLUDED.schemeuser,
			schemeadmin = EXCLUDED.schemeadmin,
			deletedat = NULL
		RETURNING joinedat
	`
	err := repository.db.QueryRow(context, query,
		member.TeamID, member.UserID, member.Roles, member.SchemeUser, member.SchemeAdmin,
	).Scan(&member.JoinedAt)
	return dberr.Wrap(err, "add_team_member")
}

/*
UpdateMemberScheme modifies a member's scheme flags.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string
  - schemeUser: bool
  - schemeAdmin: bool

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) UpdateMemberScheme(context context.Context, teamID, userID string, schemeUser, schemeAdmin bool) error {
	const query = `
		UPDATE teams.member SET schemeuser = $3, schemeadmin = $4
		WHERE teamid = $1 AND userid = $2 AND deletedat IS NULL
	`
	_, err := repository.db.Exec(context, query, teamID, userID, schemeUser, schemeAdmin)
	return dberr.Wrap(err, "update_team_member_scheme")
}

/*
RemoveMember soft-deletes a membership link.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) RemoveMember(context context.Context, teamID, userID string) error {
	const query = `UPDATE teams.member SET deletedat = NOW() WHERE teamid = $1 AND userid = $2`
	_, err := repository.db.Exec(context, query, teamID, userID)
	return dberr.Wrap(err, "remove_team_member")
}
