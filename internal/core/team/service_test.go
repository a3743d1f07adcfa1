// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package team_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/core/team"
	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/sec"
)

// fakeRepository records mutations in memory for service tests.
type fakeRepository struct {
	teams   map[string]*team.Team
	members map[string]*team.Member // keyed by teamID+"/"+userID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		teams:   make(map[string]*team.Team),
		members: make(map[string]*team.Member),
	}
}

func memberKey(teamID, userID string) string { return teamID + "/" + userID }

func (f *fakeRepository) List(_ context.Context, _ team.Filter, _, _ int) ([]*team.Team, int, error) {
	var out []*team.Team
	for _, t := range f.teams {
		out = append(out, t)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*team.Team, error) {
	if t, ok := f.teams[id]; ok {
		return t, nil
	}
	return nil, apperr.NotFound("Team")
}

func (f *fakeRepository) FindBySlug(_ context.Context, slug string) (*team.Team, error) {
	for _, t := range f.teams {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, apperr.NotFound("Team")
}

func (f *fakeRepository) Create(_ context.Context, t *team.Team) error {
	f.teams[t.ID] = t
	return nil
}

func (f *fakeRepository) Update(_ context.Context, t *team.Team) error {
	f.teams[t.ID] = t
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	delete(f.teams, id)
	return nil
}

func (f *fakeRepository) ListMembers(_ context.Context, teamID string) ([]*team.Member, error) {
	var out []*team.Member
	for _, m := range f.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindMember(_ context.Context, teamID, userID string) (*team.Member, error) {
	if m, ok := f.members[memberKey(teamID, userID)]; ok {
		return m, nil
	}
	return nil, apperr.NotFound("Team member")
}

func (f *fakeRepository) AddMember(_ context.Context, m *team.Member) error {
	f.members[memberKey(m.TeamID, m.UserID)] = m
	return nil
}

func (f *fakeRepository) UpdateMemberScheme(_ context.Context, teamID, userID string, schemeUser, schemeAdmin bool) error {
	m, ok := f.members[memberKey(teamID, userID)]
	if !ok {
		return apperr.NotFound("Team member")
	}
	m.SchemeUser = schemeUser
	m.SchemeAdmin = schemeAdmin
	return nil
}

func (f *fakeRepository) RemoveMember(_ context.Context, teamID, userID string) error {
	delete(f.members, memberKey(teamID, userID))
	return nil
}

func newTestService(repo *fakeRepository) *team.Service {
	return team.NewService(repo, slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

/*
TestService_CreateTeam verifies ID and slug generation plus the automatic
admin membership for the creator.
*/
func TestService_CreateTeam(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created := &team.Team{Name: "Platform Crew", IsOpen: true}
	err := service.CreateTeam(context.Background(), created, "creator-1")
	require.NoError(t, err)

	assert.Len(t, created.ID, 36)
	assert.Equal(t, "platform-crew", created.Slug)

	member, err := repo.FindMember(context.Background(), created.ID, "creator-1")
	require.NoError(t, err)
	assert.True(t, member.SchemeUser)
	assert.True(t, member.SchemeAdmin)
}

/*
TestService_CreateTeam_Validation rejects a team without a name.
*/
func TestService_CreateTeam_Validation(t *testing.T) {
	service := newTestService(newFakeRepository())

	err := service.CreateTeam(context.Background(), &team.Team{}, "creator-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_GetTeam covers the UUID-versus-slug identifier discrimination.
*/
func TestService_GetTeam(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created := &team.Team{Name: "Design"}
	require.NoError(t, service.CreateTeam(context.Background(), created, "creator-1"))

	byID, err := service.GetTeam(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "design", byID.Slug)

	bySlug, err := service.GetTeam(context.Background(), "design")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)
}

/*
TestService_PromoteDemoteMember checks scheme flag transitions and the
missing-membership guard.
*/
func TestService_PromoteDemoteMember(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	member, err := service.JoinTeam(context.Background(), "team-1", "user-1")
	require.NoError(t, err)
	assert.True(t, member.SchemeUser)
	assert.False(t, member.SchemeAdmin)

	require.NoError(t, service.PromoteMember(context.Background(), "team-1", "user-1"))
	promoted, _ := repo.FindMember(context.Background(), "team-1", "user-1")
	assert.True(t, promoted.SchemeAdmin)

	require.NoError(t, service.DemoteMember(context.Background(), "team-1", "user-1"))
	demoted, _ := repo.FindMember(context.Background(), "team-1", "user-1")
	assert.False(t, demoted.SchemeAdmin)
	assert.True(t, demoted.SchemeUser)

	err = service.PromoteMember(context.Background(), "team-1", "ghost")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestMember_EffectiveRoles verifies folding scheme flags into the role token
string without duplicates.
*/
func TestMember_EffectiveRoles(t *testing.T) {
	tests := []struct {
		name   string
		member team.Member
		want   string
	}{
		{"plain_user", team.Member{SchemeUser: true}, sec.RoleTeamUser},
		{"admin", team.Member{SchemeUser: true, SchemeAdmin: true}, sec.RoleTeamUser + " " + sec.RoleTeamAdmin},
		{"explicit_token_not_duplicated", team.Member{Roles: sec.RoleTeamUser, SchemeUser: true}, sec.RoleTeamUser},
		{"no_flags", team.Member{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.member.EffectiveRoles())
		})
	}
}
