// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loqui-im/loqui/internal/platform/database/schema"
	"github.com/loqui-im/loqui/internal/platform/dberr"
	"github.com/loqui-im/loqui/internal/users/auth"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed directory store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// userColumns is the SELECT list shared by every profile query.
var userColumns = strings.Join([]string{
	schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
	schema.UserAccount.Nickname, schema.UserAccount.FirstName, schema.UserAccount.LastName,
	schema.UserAccount.Position, schema.UserAccount.Roles, schema.UserAccount.IsVerified,
	schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
}, ", ")

// scanUser hydrates one user row from the shared SELECT list.
func scanUser(row interface{ Scan(...any) error }) (*auth.User, error) {
	user := &auth.User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email,
		&user.Nickname, &user.FirstName, &user.LastName,
		&user.Position, &user.Roles, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Directory Retrieval

/*
List returns a page of active users ordered by username.

Description: Uses COUNT(*) OVER() to return total metadata in the same pass.

Parameters:
  - context: context.Context
  - limit, offset: int

Returns:
  - []*auth.User: Page of users
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		WHERE %s IS NULL
		ORDER BY %s ASC
		LIMIT $1 OFFSET $2`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.DeletedAt, schema.UserAccount.Username,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	var users []*auth.User
	var total int
	for rows.Next() {
		user := &auth.User{}
		err := rows.Scan(
			&user.ID, &user.Username, &user.Email,
			&user.Nickname, &user.FirstName, &user.LastName,
			&user.Position, &user.Roles, &user.IsVerified,
			&user.CreatedAt, &user.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, total, nil
}

/*
SearchCandidates returns users whose identity fields contain the term.

Description: This is the broad ILIKE prefilter. Precise prefix semantics
(username segments, nickname prefix-only) are applied afterwards in memory by
[FilterMatchingTerm], so this query may over-match but must never under-match.

Parameters:
  - context: context.Context
  - term: string
  - teamID, channelID: string (optional scope)
  - limit: int

Returns:
  - []*auth.User: Candidate profiles, ordered by username
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) SearchCandidates(context context.Context, term, teamID, channelID string, limit int) ([]*auth.User, error) {
	account := schema.UserAccount

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s FROM %s u
		WHERE u.%s IS NULL`,
		prefixColumns("u", userColumns), account.Table, account.DeletedAt,
	))

	args := []any{}
	argID := 1

	if teamID != "" {
		member := schema.TeamMember
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s m WHERE m.%s = u.%s AND m.%s = $%d AND m.%s IS NULL)",
			member.Table, member.UserID, account.ID, member.TeamID, argID, member.DeletedAt,
		))
		args = append(args, teamID)
		argID++
	}

	if channelID != "" {
		member := schema.ChannelMember
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s m WHERE m.%s = u.%s AND m.%s = $%d AND m.%s IS NULL)",
			member.Table, member.UserID, account.ID, member.ChannelID, argID, member.DeletedAt,
		))
		args = append(args, channelID)
		argID++
	}

	if term != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND (u.%[1]s ILIKE $%[7]d OR u.%[2]s ILIKE $%[7]d OR u.%[3]s ILIKE $%[7]d
			  OR u.%[4]s ILIKE $%[7]d OR u.%[5]s ILIKE $%[7]d
			  OR (u.%[3]s || ' ' || u.%[4]s) ILIKE $%[7]d OR u.%[6]s ILIKE $%[7]d)`,
			account.Username, account.Nickname, account.FirstName,
			account.LastName, account.Position, account.Email, argID,
		))
		args = append(args, "%"+term+"%")
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY u.%s ASC LIMIT $%d", account.Username, argID))
	args = append(args, limit)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_users")
	}
	defer rows.Close()

	var users []*auth.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, user)
	}

	return users, nil
}

/*
FindByID retrieves a single user by primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: Hydrated entity
  - error: dberr.ErrNotFound or database failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.ID, schema.UserAccount.DeletedAt,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_id")
	}
	return user, nil
}

/*
FindByUsername retrieves a single user by their unique username.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *auth.User: Hydrated entity
  - error: dberr.ErrNotFound or database failures
*/
func (repository *PostgresRepository) FindByUsername(context context.Context, username string) (*auth.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE LOWER(%s) = LOWER($1) AND %s IS NULL`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Username, schema.UserAccount.DeletedAt,
	)

	user, err := scanUser(repository.pool.QueryRow(context, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_username")
	}
	return user, nil
}

// # Scheme Memberships

/*
TeamMemberships returns the scheme flags of every member of a team.

Parameters:
  - context: context.Context
  - teamID: string

Returns:
  - map[string]*Membership: Membership by user ID
  - error: Retrieval failures
*/
func (repository *PostgresRepository) TeamMemberships(context context.Context, teamID string) (map[string]*Membership, error) {
	member := schema.TeamMember
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		member.UserID, member.SchemeUser, member.SchemeAdmin,
		member.Table, member.TeamID, member.DeletedAt,
	)

	return repository.queryMemberships(context, query, teamID, "list_team_memberships")
}

/*
ChannelMemberships returns the scheme flags of every member of a channel.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - map[string]*Membership: Membership by user ID
  - error: Retrieval failures
*/
func (repository *PostgresRepository) ChannelMemberships(context context.Context, channelID string) (map[string]*Membership, error) {
	member := schema.ChannelMember
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 AND %s IS NULL`,
		member.UserID, member.SchemeUser, member.SchemeAdmin,
		member.Table, member.ChannelID, member.DeletedAt,
	)

	return repository.queryMemberships(context, query, channelID, "list_channel_memberships")
}

// queryMemberships runs a membership query and builds the user ID index.
func (repository *PostgresRepository) queryMemberships(context context.Context, query, scopeID, action string) (map[string]*Membership, error) {
	rows, err := repository.pool.Query(context, query, scopeID)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	memberships := make(map[string]*Membership)
	for rows.Next() {
		membership := &Membership{}
		if err := rows.Scan(&membership.UserID, &membership.SchemeUser, &membership.SchemeAdmin); err != nil {
			return nil, dberr.Wrap(err, action)
		}
		memberships[membership.UserID] = membership
	}

	return memberships, nil
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ", ")
	for i, part := range parts {
		parts[i] = alias + "." + part
	}
	return strings.Join(parts, ", ")
}
