// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package profile_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/sec"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/internal/users/profile"
)

// fakeRepository serves canned users and memberships for service tests.
type fakeRepository struct {
	users              []*auth.User
	teamMemberships    map[string]*profile.Membership
	channelMemberships map[string]*profile.Membership

	lastTeamID    string
	lastChannelID string
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*auth.User, int, error) {
	if offset >= len(f.users) {
		return nil, len(f.users), nil
	}
	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	return f.users[offset:end], len(f.users), nil
}

func (f *fakeRepository) SearchCandidates(_ context.Context, _, teamID, channelID string, limit int) ([]*auth.User, error) {
	f.lastTeamID = teamID
	f.lastChannelID = channelID
	if limit > len(f.users) {
		limit = len(f.users)
	}
	return f.users[:limit], nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeRepository) TeamMemberships(_ context.Context, teamID string) (map[string]*profile.Membership, error) {
	f.lastTeamID = teamID
	return f.teamMemberships, nil
}

func (f *fakeRepository) ChannelMemberships(_ context.Context, channelID string) (map[string]*profile.Membership, error) {
	f.lastChannelID = channelID
	return f.channelMemberships, nil
}

func newTestService(repo *fakeRepository) *profile.Service {
	return profile.NewService(repo, slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

/*
TestService_SearchUsers verifies the prefilter-then-match pipeline and the
result limit.
*/
func TestService_SearchUsers(t *testing.T) {
	repo := &fakeRepository{users: []*auth.User{
		{ID: "u1", Username: "jane.doe", Email: "jane@loqui.im", Roles: sec.RoleSystemUser},
		{ID: "u2", Username: "janet", Email: "janet@loqui.im", Roles: sec.RoleSystemUser},
		{ID: "u3", Username: "bob", Email: "bob@loqui.im", Roles: sec.RoleSystemUser},
	}}
	service := newTestService(repo)

	users, err := service.SearchUsers(context.Background(), profile.SearchOptions{Term: "@jane", Limit: 10})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "jane.doe", users[0].Username)
	assert.Equal(t, "janet", users[1].Username)

	users, err = service.SearchUsers(context.Background(), profile.SearchOptions{Term: "jane", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

/*
TestService_SearchUsers_RoleFilter checks that the console role filter loads
scheme memberships for the scoped channel and filters by them.
*/
func TestService_SearchUsers_RoleFilter(t *testing.T) {
	repo := &fakeRepository{
		users: []*auth.User{
			{ID: "u1", Username: "alice", Roles: sec.RoleSystemUser},
			{ID: "u2", Username: "albert", Roles: sec.RoleSystemUser},
		},
		channelMemberships: map[string]*profile.Membership{
			"u1": {UserID: "u1", SchemeUser: true, SchemeAdmin: true},
			"u2": {UserID: "u2", SchemeUser: true},
		},
	}
	service := newTestService(repo)

	users, err := service.SearchUsers(context.Background(), profile.SearchOptions{
		Term:      "al",
		ChannelID: "ch1",
		Roles:     []string{sec.RoleChannelAdmin},
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "ch1", repo.lastChannelID)
}

/*
TestService_Autocomplete confirms the split-term alternates accompany the
matched users.
*/
func TestService_Autocomplete(t *testing.T) {
	repo := &fakeRepository{users: []*auth.User{
		{ID: "u1", Username: "first.last", Roles: sec.RoleSystemUser},
	}}
	service := newTestService(repo)

	users, alternates, err := service.Autocomplete(context.Background(), profile.SearchOptions{Term: "first.last", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Contains(t, alternates, "last")
	assert.NotContains(t, alternates, "first.last")
}

/*
TestService_GetUser covers the identifier discrimination between UUIDs and
usernames, including mention syntax.
*/
func TestService_GetUser(t *testing.T) {
	id := "0190b2c4-7d1e-7a2b-9f3c-1a2b3c4d5e6f"
	repo := &fakeRepository{users: []*auth.User{
		{ID: id, Username: "jane.doe"},
	}}
	service := newTestService(repo)

	byID, err := service.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe", byID.Username)

	byName, err := service.GetUser(context.Background(), "@jane.doe")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	_, err = service.GetUser(context.Background(), "nobody")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestValidateOptions checks limit normalization and the mutually exclusive
scope rule.
*/
func TestValidateOptions(t *testing.T) {
	opts, err := profile.ValidateOptions(profile.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 50, opts.Limit)

	opts, err = profile.ValidateOptions(profile.SearchOptions{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 200, opts.Limit)

	_, err = profile.ValidateOptions(profile.SearchOptions{TeamID: "t1", ChannelID: "c1"})
	assert.Error(t, err)
}

/*
TestTermSuggestions verifies alternate search terms derived from separator
splitting.
*/
func TestTermSuggestions(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"dotted", "first.last", []string{".last", "last"}},
		{"mention_prefix", "@first.last", []string{".last", "last"}},
		{"no_separators", "plain", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profile.TermSuggestions(tt.term))
		})
	}
}
