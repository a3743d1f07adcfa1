// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

/*
Package profile provides the HTTP interface for the user directory.

It exposes endpoints for browsing the workspace directory, free-text search,
mention-box autocomplete, and single-profile lookup.

# Routing Strategy

  - All directory routes require authentication (mounted behind RequireAuth).
  - Role-filtered searches are additionally restricted to console admins.

The handler translates between the REST layer and the [Service] domain.
*/
package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/middleware"
	requestutil "github.com/loqui-im/loqui/internal/platform/request"
	"github.com/loqui-im/loqui/internal/platform/respond"
	"github.com/loqui-im/loqui/internal/platform/sec"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/pkg/convert"
	"github.com/loqui-im/loqui/pkg/pagination"
	"github.com/loqui-im/loqui/pkg/query"
	"github.com/loqui-im/loqui/pkg/slice"
)

// # Handler Implementation

// Handler implements the HTTP layer for directory operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new directory [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with directory endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Get("/", handler.listUsers)
	router.Get("/search", handler.searchUsers)
	router.Get("/autocomplete", handler.autocomplete)
	router.Get("/{identifier}", handler.getUser)

	return router
}

// # Presentation

// profileView is the transport shape of a directory entry. DisplayName is
// resolved server-side under the caller's name_format so thin clients don't
// reimplement the preference logic.
type profileView struct {
	*auth.User
	DisplayName string `json:"display_name"`
}

// newProfileView decorates a user with their resolved display name.
func newProfileView(user *auth.User, preference string) profileView {
	return profileView{User: user, DisplayName: DisplayUsername(user, preference, true)}
}

// # Directory Endpoints

/*
GET /api/v1/users.

Description: Retrieves a paginated page of the workspace directory.

Request:
  - page, limit: int
  - name_format: string (display preference for display_name resolution)

Response:
  - 200: []profileView: Paginated directory page
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	preference := request.URL.Query().Get("name_format")

	users, total, err := handler.service.ListUsers(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views := slice.Map(users, func(user *auth.User) profileView {
		return newProfileView(user, preference)
	})

	respond.Paginated(writer, views, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/users/search.

Description: Free-text directory search with optional team/channel scoping
and console role filtering.

Request:
  - term: string
  - in_team: string (team UUID)
  - in_channel: string (channel UUID)
  - roles: string (comma-separated role tokens; admin only)
  - limit: int
  - name_format: string

Response:
  - 200: []profileView: Matching users
  - 403: Forbidden: Role filter requested by a non-admin
*/
func (handler *Handler) searchUsers(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	options := SearchOptions{
		Term:      queryParams.Get("term"),
		TeamID:    queryParams.Get("in_team"),
		ChannelID: queryParams.Get("in_channel"),
		Roles:     query.StringSlice(queryParams.Get("roles")),
		Limit:     convert.ToInt(queryParams.Get("limit")),
	}

	// Role-based filtering exposes membership standing; console admins only.
	if len(options.Roles) > 0 {
		claims := requestutil.Claims(request)
		if claims == nil || !sec.IncludesAnAdminRole(claims.Roles) {
			respond.Error(writer, request, apperr.Forbidden("Role filters require console admin access"))
			return
		}
	}

	options, err := ValidateOptions(options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	users, err := handler.service.SearchUsers(request.Context(), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	preference := queryParams.Get("name_format")
	respond.OK(writer, slice.Map(users, func(user *auth.User) profileView {
		return newProfileView(user, preference)
	}))
}

/*
GET /api/v1/users/autocomplete.

Description: Mention-box completion. Returns matching users plus alternate
search terms derived by splitting the input on separator characters.

Request:
  - term: string
  - in_team, in_channel: string (optional scope)
  - limit: int
  - name_format: string

Response:
  - 200: {users: []profileView, term_suggestions: []string}
*/
func (handler *Handler) autocomplete(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	options, err := ValidateOptions(SearchOptions{
		Term:      queryParams.Get("term"),
		TeamID:    queryParams.Get("in_team"),
		ChannelID: queryParams.Get("in_channel"),
		Limit:     convert.ToInt(queryParams.Get("limit")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	users, alternates, err := handler.service.Autocomplete(request.Context(), options)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	preference := queryParams.Get("name_format")
	respond.OK(writer, map[string]any{
		"users": slice.Map(users, func(user *auth.User) profileView {
			return newProfileView(user, preference)
		}),
		"term_suggestions": alternates,
	})
}

/*
GET /api/v1/users/{identifier}.

Description: Retrieves one profile by UUID or username (with or without a
leading @).

Request:
  - identifier: string (UUID or username)
  - name_format: string

Response:
  - 200: profileView: Success
  - 404: ErrNotFound: User not found
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.Param(request, "identifier")

	user, err := handler.service.GetUser(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, newProfileView(user, request.URL.Query().Get("name_format")))
}
