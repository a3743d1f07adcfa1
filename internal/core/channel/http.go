// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package channel provides the HTTP interface for conversation management.

It exposes endpoints for channel discovery, membership handling, and scheme
administration.

# Routing Strategy

  - Authenticated: All channel endpoints require a valid session.
  - Restricted: Scheme administration (PUT /channels/{id}/members/{userID}/scheme).

The handler translates between the REST layer and the [Service] domain.
*/
package channel

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/loqui-im/loqui/internal/platform/middleware"
	requestutil "github.com/loqui-im/loqui/internal/platform/request"
	"github.com/loqui-im/loqui/internal/platform/respond"
	"github.com/loqui-im/loqui/internal/platform/validate"
	"github.com/loqui-im/loqui/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for channel operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new channel [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with channel-related endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listChannels)
	router.Post("/", handler.createChannel)
	router.Get("/{id}", handler.getChannel)
	router.Get("/{id}/members", handler.listMembers)
	router.Post("/{id}/members", handler.joinChannel)
	router.Delete("/{id}/members/{userID}", handler.removeMember)

	// ## Administrative
	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Patch("/", handler.updateChannel)
		subRouter.Delete("/", handler.deleteChannel)
		subRouter.Put("/members/{userID}/scheme", handler.updateMemberScheme)
	})

	return router
}

// # Channel Endpoints

/*
GET /api/v1/channels.

Description: Retrieves a paginated list of channels, optionally scoped to a team.

Request:
  - team_id: string (Scope to a workspace)
  - q: string (Full-text search)
  - type: string (O or P)
  - limit: int
  - page: int

Response:
  - 200: []Channel: Paginated list
*/
func (handler *Handler) listChannels(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		TeamID: queryParams.Get("team_id"),
		Query:  queryParams.Get("q"),
	}

	if channelType := queryParams.Get("type"); channelType != "" {
		value := Type(channelType)
		filter.Type = &value
	}

	channels, total, err := handler.service.ListChannels(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, channels, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/channels/{id}.

Description: Retrieves full details of a channel by its UUID.

Request:
  - id: string (UUID)

Response:
  - 200: Channel: Success
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) getChannel(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")

	channel, err := handler.service.GetChannel(request.Context(), channelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, channel)
}

/*
POST /api/v1/channels.

Description: Registers a new channel inside a team. Slugs are auto-generated
from the name and the creator becomes the first channel admin.

Request (Body):
  - Channel JSON object (requires team_id)

Response:
  - 201: Channel: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createChannel(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Channel

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateChannel(request.Context(), &input, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/channels/{id}.

Description: Updates mutable channel metadata like the topic.

Request:
  - id: string (Target UUID)
  - body: Channel Partial (JSON)

Response:
  - 200: Channel: Updated entity
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) updateChannel(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")

	var input Channel
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Topic != nil {
		v.MaxLen(FieldTopic, *input.Topic, 1024)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = channelID

	if err := handler.service.UpdateChannel(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/channels/{id}.

Description: Soft-deletes a channel.

Response:
  - 204: No Content: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) deleteChannel(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")

	if err := handler.service.DeleteChannel(request.Context(), channelID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Membership Endpoints

/*
GET /api/v1/channels/{id}/members.

Description: Lists all users and their scheme flags within the channel roster.

Request:
  - id: string (Channel UUID)

Response:
  - 200: []Member: Success
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")

	members, err := handler.service.ListMembers(request.Context(), channelID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, members)
}

/*
POST /api/v1/channels/{id}/members.

Description: Joins the authenticated user to an open channel as a regular member.

Request:
  - id: string (Channel UUID)

Response:
  - 201: Member: Created affiliation
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Channel not found
*/
func (handler *Handler) joinChannel(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.JoinChannel(request.Context(), channelID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, member)
}

// updateSchemeRequest defines the payload for scheme administration.
type updateSchemeRequest struct {
	SchemeAdmin bool `json:"scheme_admin"`
}

/*
PUT /api/v1/channels/{id}/members/{userID}/scheme.

Description: Promotes or demotes a member's channel admin scheme flag.

Request:
  - id: string (Channel UUID)
  - userID: string (User UUID)
  - body: updateSchemeRequest

Response:
  - 200: Message: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Member not found
*/
func (handler *Handler) updateMemberScheme(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")
	userID := requestutil.ID(request, "userID")

	var input updateSchemeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var err error
	if input.SchemeAdmin {
		err = handler.service.PromoteMember(request.Context(), channelID, userID)
	} else {
		err = handler.service.DemoteMember(request.Context(), channelID, userID)
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldMessage: "Member scheme updated"})
}

/*
DELETE /api/v1/channels/{id}/members/{userID}.

Description: Removes a member's affiliation with the channel.

Request:
  - id: string (Channel UUID)
  - userID: string (User UUID)

Response:
  - 204: No Content: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Member not found
*/
func (handler *Handler) removeMember(writer http.ResponseWriter, request *http.Request) {
	channelID := requestutil.ID(request, "id")
	userID := requestutil.ID(request, "userID")

	if err := handler.service.RemoveMember(request.Context(), channelID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
