// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile

import (
	"context"
	"log/slog"
	"strings"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/pkg/suggest"
)

// # Service Layer

// searchCandidateFactor over-fetches SQL candidates relative to the requested
// limit, leaving room for rows the precise in-memory matcher rejects.
const searchCandidateFactor = 4

// Service orchestrates directory lookups, search, and role filtering.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new directory [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Directory Listing

/*
ListUsers retrieves a paginated page of the workspace directory.

Parameters:
  - context: context.Context
  - limit, offset: int

Returns:
  - []*auth.User: Page of users
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListUsers(context context.Context, limit, offset int) ([]*auth.User, int, error) {
	return service.repo.List(context, limit, offset)
}

/*
GetUser retrieves a user by UUID or username identifier.

Parameters:
  - context: context.Context
  - identifier: string

Returns:
  - *auth.User: Hydrated user entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetUser(context context.Context, identifier string) (*auth.User, error) {

	// Discriminator: ID vs Username
	// UUIDs have a fixed length of 36 characters in standard hyphenated format.
	if len(identifier) == 36 {
		return service.repo.FindByID(context, identifier)
	}

	return service.repo.FindByUsername(context, strings.TrimPrefix(identifier, "@"))
}

// # Directory Search

// SearchOptions carries the parameters of a directory search.
type SearchOptions struct {
	// Term is the free-text search string; a leading '@' is tolerated.
	Term string

	// TeamID / ChannelID scope the search to one team or channel.
	// At most one should be set; ChannelID wins if both are.
	TeamID    string
	ChannelID string

	// Roles restricts results to users qualifying under the given role
	// tokens (system console filter). Empty means no role filtering.
	Roles []string

	// Limit bounds the result size.
	Limit int
}

/*
SearchUsers finds directory entries matching a free-text term.

Description: Runs a broad SQL prefilter, then applies the precise prefix
matcher in memory. When a role filter is present, team or channel scheme
memberships are loaded and each candidate is checked via [ApplyRolesFilters].

Parameters:
  - context: context.Context
  - options: SearchOptions

Returns:
  - []*auth.User: Matching users, ordered by username
  - error: Retrieval errors
*/
func (service *Service) SearchUsers(context context.Context, options SearchOptions) ([]*auth.User, error) {
	term := strings.TrimPrefix(strings.TrimSpace(options.Term), "@")

	candidates, err := service.repo.SearchCandidates(
		context, term, options.TeamID, options.ChannelID, options.Limit*searchCandidateFactor,
	)
	if err != nil {
		return nil, err
	}

	matched := FilterMatchingTerm(candidates, term)

	if len(options.Roles) > 0 {
		matched, err = service.filterByRoles(context, matched, options)
		if err != nil {
			return nil, err
		}
	}

	if len(matched) > options.Limit {
		matched = matched[:options.Limit]
	}

	return matched, nil
}

/*
Autocomplete finds mention-box completions for a partially typed term.

Description: Same pipeline as SearchUsers, plus the split-term suggestions a
client can offer when the raw term is separator-heavy ("first.last" also
suggests searching "last").

Parameters:
  - context: context.Context
  - options: SearchOptions

Returns:
  - []*auth.User: Matching users
  - []string: Non-empty alternate search terms derived from the input
  - error: Retrieval errors
*/
func (service *Service) Autocomplete(context context.Context, options SearchOptions) ([]*auth.User, []string, error) {
	users, err := service.SearchUsers(context, options)
	if err != nil {
		return nil, nil, err
	}

	return users, TermSuggestions(options.Term), nil
}

// TermSuggestions expands a typed term into its non-empty split-term
// alternates, excluding the term itself.
func TermSuggestions(term string) []string {
	term = strings.TrimPrefix(strings.TrimSpace(term), "@")

	var alternates []string
	for _, suggestion := range suggest.SplitByMultiple(term, suggest.SplitChars) {
		if suggestion != "" && suggestion != term {
			alternates = append(alternates, suggestion)
		}
	}

	return alternates
}

// filterByRoles applies the console role filter against scheme memberships.
func (service *Service) filterByRoles(context context.Context, users []*auth.User, options SearchOptions) ([]*auth.User, error) {
	memberships, err := service.loadMemberships(context, options)
	if err != nil {
		return nil, err
	}

	filtered := make([]*auth.User, 0, len(users))
	for _, user := range users {
		if ApplyRolesFilters(user, options.Roles, memberships[user.ID]) {
			filtered = append(filtered, user)
		}
	}

	return filtered, nil
}

// loadMemberships fetches the scheme membership index for the search scope.
// A workspace-wide search has no scope, so every membership is nil and only
// system-level roles can match.
func (service *Service) loadMemberships(context context.Context, options SearchOptions) (map[string]*Membership, error) {
	switch {
	case options.ChannelID != "":
		return service.repo.ChannelMemberships(context, options.ChannelID)
	case options.TeamID != "":
		return service.repo.TeamMemberships(context, options.TeamID)
	default:
		return nil, nil
	}
}

// # Validation

// normalizeLimit clamps a requested result size into the service bounds.
func normalizeLimit(limit int) int {
	const (
		defaultLimit = 50
		maxLimit     = 200
	)

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// ValidateOptions normalizes and sanity-checks search options.
func ValidateOptions(options SearchOptions) (SearchOptions, error) {
	options.Limit = normalizeLimit(options.Limit)

	if options.TeamID != "" && options.ChannelID != "" {
		return options, apperr.ValidationError("Scope search by either team or channel, not both")
	}

	return options, nil
}
