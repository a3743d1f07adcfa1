// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package team

import (
	"context"
	"log/slog"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/validate"
	"github.com/loqui-im/loqui/pkg/slug"
	"github.com/loqui-im/loqui/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for teams and memberships.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new team [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Team Management

/*
ListTeams retrieves a paginated and filtered list of teams.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Team: List of teams
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListTeams(context context.Context, filter Filter, limit, offset int) ([]*Team, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetTeam retrieves a team by its UUID or Slug identifier.

Parameters:
  - context: context.Context
  - identifier: string

Returns:
  - *Team: Hydrated team entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetTeam(context context.Context, identifier string) (*Team, error) {

	// Discriminator: ID vs Slug
	// UUIDs have a fixed length of 36 characters in standard hyphenated format.
	if len(identifier) == 36 {
		return service.repo.FindByID(context, identifier)
	}

	return service.repo.FindBySlug(context, identifier)
}

/*
CreateTeam initialises a new workspace and assigns the creator as team admin.

Parameters:
  - context: context.Context
  - team: *Team
  - creatorID: string (The user creating the team)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateTeam(context context.Context, team *Team, creatorID string) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, team.Name).MaxLen(FieldName, team.Name, 200)

	if err := validator.Err(); err != nil {
		return err
	}

	team.ID = uuid.New()
	team.Slug = slug.From(team.Name)

	if err := service.repo.Create(context, team); err != nil {
		return err
	}

	if err := service.repo.AddMember(context, &Member{
		TeamID:      team.ID,
		UserID:      creatorID,
		SchemeUser:  true,
		SchemeAdmin: true,
	}); err != nil {
		return err
	}

	service.logger.Info("team_created",
		slog.String("team_id", team.ID),
		slog.String("creator_id", creatorID),
	)

	return nil
}

/*
UpdateTeam modifies the metadata of an existing team.

Parameters:
  - context: context.Context
  - team: *Team

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateTeam(context context.Context, team *Team) error {
	validator := &validate.Validator{}
	if team.Name != "" {
		validator.MaxLen(FieldName, team.Name, 200)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, team); err != nil {
		return err
	}

	service.logger.Info("team_updated", slog.String("team_id", team.ID))

	return nil
}

/*
DeleteTeam soft-deletes a workspace.

Parameters:
  - context: context.Context
  - teamID: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteTeam(context context.Context, teamID string) error {
	if err := service.repo.SoftDelete(context, teamID); err != nil {
		return err
	}

	service.logger.Warn("team_deleted", slog.String("team_id", teamID))

	return nil
}

// # Membership Controls

/*
ListMembers returns the roster for a specific team.

Parameters:
  - context: context.Context
  - teamID: string

Returns:
  - []*Member: List of affiliated users
  - error: Retrieval failures
*/
func (service *Service) ListMembers(context context.Context, teamID string) ([]*Member, error) {
	return service.repo.ListMembers(context, teamID)
}

/*
JoinTeam adds a user to a team as a regular member.

Description: Open teams accept anyone; closed teams only admit users added
by a team admin, which the handler enforces before calling this.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string

Returns:
  - *Member: The created membership
  - error: Persistence failures
*/
func (service *Service) JoinTeam(context context.Context, teamID, userID string) (*Member, error) {
	member := &Member{
		TeamID:     teamID,
		UserID:     userID,
		SchemeUser: true,
	}

	if err := service.repo.AddMember(context, member); err != nil {
		return nil, err
	}

	service.logger.Info("team_member_joined",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
	)

	return member, nil
}

/*
PromoteMember grants the team admin scheme flag to a member.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string

Returns:
  - error: ErrNotFound if no active membership exists
*/
func (service *Service) PromoteMember(context context.Context, teamID, userID string) error {
	if _, err := service.repo.FindMember(context, teamID, userID); err != nil {
		return apperr.NotFound("Team member")
	}

	if err := service.repo.UpdateMemberScheme(context, teamID, userID, true, true); err != nil {
		return err
	}

	service.logger.Info("team_member_promoted",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
	)

	return nil
}

/*
DemoteMember revokes the team admin scheme flag from a member.

Parameters:
  - context: context.Context
  - teamID: string
  - userID: string

Returns:
  - error: ErrNotFound if no active membership exists
*/
func (service *Service) DemoteMember(context context.Context, teamID, userID string) error {
	if _, err := service.repo.FindMember(context, teamID, userID); err != nil {
		return apperr.NotFound("Team member")
	}

	if err := service.repo.UpdateMemberScheme(context, teamID, userID, true, false); err != nil {
		return err
	}

	service.logger.Info("team_member_demoted",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
	)

	return nil
}

/*
RemoveMember removes an affiliation between a user and a team.

Parameters:
  - context: context.Context
  - teamID: string (UUID)
  - userID: string (UUID)

Returns:
  - error: Storage failures
*/
func (service *Service) RemoveMember(context context.Context, teamID, userID string) error {
	return service.repo.RemoveMember(context, teamID, userID)
}
