// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package team provides the HTTP interface for workspace management.

It exposes endpoints for team discovery, membership handling, and scheme
administration.

# Routing Strategy

  - Public (v1): Listing and detail views (GET /teams).
  - Authenticated: Member-specific actions (POST /teams, POST /teams/{id}/members).
  - Restricted: Scheme administration (PUT /teams/{id}/members/{userID}/scheme).

The handler translates between the REST layer and the [Service] domain.
*/
package team

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

// Handler implements the HTTP layer for team operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new team [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with team-related endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery
	router.Get("/", handler.listTeams)
	router.Get("/{identifier}", handler.getTeam)
	router.Get("/{id}/members", handler.listMembers)

	// ## Membership & Administration (Auth Required)
	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)

		protected.Post("/", handler.createTeam)
		protected.Post("/{id}/members", handler.joinTeam)
		protected.Delete("/{id}/members/{userID}", handler.removeMember)

		protected.Route("/{id}", func(subRouter chi.Router) {
			subRouter.Patch("/", handler.updateTeam)
			subRouter.Delete("/", handler.deleteTeam)
			subRouter.Put("/members/{userID}/scheme", handler.updateMemberScheme)
		})
	})

	return router
}

// # Team Endpoints

/*
GET /api/v1/teams.

Description: Retrieves a paginated list of teams.
Supports searching by name and filtering by openness.

Request:
  - q: string (Full-text search)
  - isopen: bool (Open teams only)
  - limit: int
  - page: int

Response:
  - 200: []Team: Paginated list
*/
func (handler *Handler) listTeams(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query: queryParams.Get("q"),
	}

	if isOpen := queryParams.Get("isopen"); isOpen != "" {
		value := isOpen == "true"
		filter.IsOpen = &value
	}

	teams, total, err := handler.service.ListTeams(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, teams, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/teams/{identifier}.

Description: Retrieves full details of a team using its UUID or unique slug.

Request:
  - identifier: string (UUID or Slug)

Response:
  - 200: Team: Success
  - 404: ErrNotFound: Team not found
*/
func (handler *Handler) getTeam(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	team, err := handler.service.GetTeam(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, team)
}

/*
POST /api/v1/teams.

Description: Registers a new team. Slugs are auto-generated from the name
and the creator becomes the first team admin.

Request (Body):
  - Team JSON object

Response:
  - 201: Team: Created object
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createTeam(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Team

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateTeam(request.Context(), &input, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, input)
}

/*
PATCH /api/v1/teams/{id}.

Description: Updates mutable team metadata like description or openness.

Request:
  - id: string (Target UUID)
  - body: Team Partial (JSON)

Response:
  - 200: Team: Updated entity
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Team not found
*/
func (handler *Handler) updateTeam(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")

	var input Team
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Name != "" {
		v.MaxLen(FieldName, input.Name, 200)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	input.ID = teamID

	if err := handler.service.UpdateTeam(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, input)
}

/*
DELETE /api/v1/teams/{id}.

Description: Soft-deletes a team.

Response:
  - 204: No Content: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Team not found
*/
func (handler *Handler) deleteTeam(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")

	if err := handler.service.DeleteTeam(request.Context(), teamID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Membership Endpoints

/*
GET /api/v1/teams/{id}/members.

Description: Lists all users and their scheme flags within the team roster.

Request:
  - id: string (Team UUID)

Response:
  - 200: []Member: Success
  - 404: ErrNotFound: Team not found
*/
func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")

	members, err := handler.service.ListMembers(request.Context(), teamID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, members)
}

/*
POST /api/v1/teams/{id}/members.

Description: Joins the authenticated user to a team as a regular member.

Request:
  - id: string (Team UUID)

Response:
  - 201: Member: Created affiliation
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Team not found
*/
func (handler *Handler) joinTeam(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.JoinTeam(request.Context(), teamID, userID)
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
PUT /api/v1/teams/{id}/members/{userID}/scheme.

Description: Promotes or demotes a member's team admin scheme flag.

Request:
  - id: string (Team UUID)
  - userID: string (User UUID)
  - body: updateSchemeRequest

Response:
  - 200: Message: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Member not found
*/
func (handler *Handler) updateMemberScheme(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")
	userID := requestutil.ID(request, "userID")

	var input updateSchemeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var err error
	if input.SchemeAdmin {
		err = handler.service.PromoteMember(request.Context(), teamID, userID)
	} else {
		err = handler.service.DemoteMember(request.Context(), teamID, userID)
	}

	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldMessage: "Member scheme updated"})
}

/*
DELETE /api/v1/teams/{id}/members/{userID}.

Description: Removes a member's affiliation with the team.

Request:
  - id: string (Team UUID)
  - userID: string (User UUID)

Response:
  - 204: No Content: Success
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Member not found
*/
func (handler *Handler) removeMember(writer http.ResponseWriter, request *http.Request) {
	teamID := requestutil.ID(request, "id")
	userID := requestutil.ID(request, "userID")

	if err := handler.service.RemoveMember(request.Context(), teamID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
