// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package channel

import (
	"context"
	"log/slog"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/validate"
	"github.com/loqui-im/loqui/pkg/slug"
	"github.com/loqui-im/loqui/pkg/uuid"
)

// # Service Layer

// Service orchestrates business rules for channels and memberships.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new channel [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Channel Management

/*
ListChannels retrieves a paginated and filtered list of channels.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit, offset: int

Returns:
  - []*Channel: List of channels
  - int: Total matching count
  - error: Retrieval errors
*/
func (service *Service) ListChannels(context context.Context, filter Filter, limit, offset int) ([]*Channel, int, error) {
	return service.repo.List(context, filter, limit, offset)
}

/*
GetChannel retrieves a channel by its UUID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Channel: Hydrated channel entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetChannel(context context.Context, id string) (*Channel, error) {
	return service.repo.FindByID(context, id)
}

/*
GetChannelBySlug retrieves a channel within a team by its slug.

Parameters:
  - context: context.Context
  - teamID: string
  - channelSlug: string

Returns:
  - *Channel: Hydrated channel entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetChannelBySlug(context context.Context, teamID, channelSlug string) (*Channel, error) {
	return service.repo.FindBySlug(context, teamID, channelSlug)
}

/*
CreateChannel initialises a new conversation and assigns the creator as
channel admin.

Parameters:
  - context: context.Context
  - channel: *Channel
  - creatorID: string (The user creating the channel)

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) CreateChannel(context context.Context, channel *Channel, creatorID string) error {
	if channel.Type == "" {
		channel.Type = TypeOpen
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, channel.Name).
		MaxLen(FieldName, channel.Name, 200).
		Required(FieldTeamID, channel.TeamID).
		OneOf(FieldType, string(channel.Type), string(TypeOpen), string(TypePrivate))

	if err := validator.Err(); err != nil {
		return err
	}

	channel.ID = uuid.New()
	channel.Slug = slug.From(channel.Name)

	if err := service.repo.Create(context, channel); err != nil {
		return err
	}

	if err := service.repo.AddMember(context, &Member{
		ChannelID:   channel.ID,
		UserID:      creatorID,
		SchemeUser:  true,
		SchemeAdmin: true,
	}); err != nil {
		return err
	}

	service.logger.Info("channel_created",
		slog.String("channel_id", channel.ID),
		slog.String("team_id", channel.TeamID),
		slog.String("creator_id", creatorID),
	)

	return nil
}

/*
UpdateChannel modifies the metadata of an existing channel.

Parameters:
  - context: context.Context
  - channel: *Channel

Returns:
  - error: Validation or persistence failures
*/
func (service *Service) UpdateChannel(context context.Context, channel *Channel) error {
	validator := &validate.Validator{}
	if channel.Topic != nil {
		validator.MaxLen(FieldTopic, *channel.Topic, 1024)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.Update(context, channel); err != nil {
		return err
	}

	service.logger.Info("channel_updated", slog.String("channel_id", channel.ID))

	return nil
}

/*
DeleteChannel soft-deletes a conversation.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - error: Persistence failures
*/
func (service *Service) DeleteChannel(context context.Context, channelID string) error {
	if err := service.repo.SoftDelete(context, channelID); err != nil {
		return err
	}

	service.logger.Warn("channel_deleted", slog.String("channel_id", channelID))

	return nil
}

// # Membership Controls

/*
ListMembers returns the roster for a specific channel.

Parameters:
  - context: context.Context
  - channelID: string

Returns:
  - []*Member: List of affiliated users
  - error: Retrieval failures
*/
func (service *Service) ListMembers(context context.Context, channelID string) ([]*Member, error) {
	return service.repo.ListMembers(context, channelID)
}

/*
JoinChannel adds a user to a channel as a regular member.

Description: Private channels only admit users added by a channel admin,
which the handler enforces before calling this.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string

Returns:
  - *Member: The created membership
  - error: ErrNotFound or persistence failures
*/
func (service *Service) JoinChannel(context context.Context, channelID, userID string) (*Member, error) {
	if _, err := service.repo.FindByID(context, channelID); err != nil {
		return nil, apperr.NotFound("Channel")
	}

	member := &Member{
		ChannelID:  channelID,
		UserID:     userID,
		SchemeUser: true,
	}

	if err := service.repo.AddMember(context, member); err != nil {
		return nil, err
	}

	service.logger.Info("channel_member_joined",
		slog.String("channel_id", channelID),
		slog.String("user_id", userID),
	)

	return member, nil
}

/*
PromoteMember grants the channel admin scheme flag to a member.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string

Returns:
  - error: ErrNotFound if no active membership exists
*/
func (service *Service) PromoteMember(context context.Context, channelID, userID string) error {
	if _, err := service.repo.FindMember(context, channelID, userID); err != nil {
		return apperr.NotFound("Channel member")
	}

	if err := service.repo.UpdateMemberScheme(context, channelID, userID, true, true); err != nil {
		return err
	}

	service.logger.Info("channel_member_promoted",
		slog.String("channel_id", channelID),
		slog.String("user_id", userID),
	)

	return nil
}

/*
DemoteMember revokes the channel admin scheme flag from a member.

Parameters:
  - context: context.Context
  - channelID: string
  - userID: string

Returns:
  - error: ErrNotFound if no active membership exists
*/
func (service *Service) DemoteMember(context context.Context, channelID, userID string) error {
	if _, err := service.repo.FindMember(context, channelID, userID); err != nil {
		return apperr.NotFound("Channel member")
	}

	if err := service.repo.UpdateMemberScheme(context, channelID, userID, true, false); err != nil {
		return err
	}

	service.logger.Info("channel_member_demoted",
		slog.String("channel_id", channelID),
		slog.String("user_id", userID),
	)

	return nil
}

/*
RemoveMember removes an affiliation between a user and a channel.

Parameters:
  - context: context.Context
  - channelID: string (UUID)
  - userID: string (UUID)

Returns:
  - error: Storage failures
*/
func (service *Service) RemoveMember(context context.Context, channelID, userID string) error {
	return service.repo.RemoveMember(context, channelID, userID)
}
