// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package channel_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/core/channel"
	"github.com/loqui-im/loqui/internal/platform/apperr"
)

// fakeRepository records mutations in memory for service tests.
type fakeRepository struct {
	channels map[string]*channel.Channel
	members  map[string]*channel.Member // keyed by channelID+"/"+userID
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		channels: make(map[string]*channel.Channel),
		members:  make(map[string]*channel.Member),
	}
}

func memberKey(channelID, userID string) string { return channelID + "/" + userID }

func (f *fakeRepository) List(_ context.Context, filter channel.Filter, _, _ int) ([]*channel.Channel, int, error) {
	var out []*channel.Channel
	for _, c := range f.channels {
		if filter.TeamID != "" && c.TeamID != filter.TeamID {
			continue
		}
		out = append(out, c)
	}
	return out, len(out), nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*channel.Channel, error) {
	if c, ok := f.channels[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Channel")
}

func (f *fakeRepository) FindBySlug(_ context.Context, teamID, slug string) (*channel.Channel, error) {
	for _, c := range f.channels {
		if c.TeamID == teamID && c.Slug == slug {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Channel")
}

func (f *fakeRepository) Create(_ context.Context, c *channel.Channel) error {
	f.channels[c.ID] = c
	return nil
}

func (f *fakeRepository) Update(_ context.Context, c *channel.Channel) error {
	f.channels[c.ID] = c
	return nil
}

func (f *fakeRepository) SoftDelete(_ context.Context, id string) error {
	delete(f.channels, id)
	return nil
}

func (f *fakeRepository) ListMembers(_ context.Context, channelID string) ([]*channel.Member, error) {
	var out []*channel.Member
	for _, m := range f.members {
		if m.ChannelID == channelID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeRepository) FindMember(_ context.Context, channelID, userID string) (*channel.Member, error) {
	if m, ok := f.members[memberKey(channelID, userID)]; ok {
		return m, nil
	}
	return nil, apperr.NotFound("Channel member")
}

func (f *fakeRepository) AddMember(_ context.Context, m *channel.Member) error {
	f.members[memberKey(m.ChannelID, m.UserID)] = m
	return nil
}

func (f *fakeRepository) UpdateMemberScheme(_ context.Context, channelID, userID string, schemeUser, schemeAdmin bool) error {
	m, ok := f.members[memberKey(channelID, userID)]
	if !ok {
		return apperr.NotFound("Channel member")
	}
	m.SchemeUser = schemeUser
	m.SchemeAdmin = schemeAdmin
	return nil
}

func (f *fakeRepository) RemoveMember(_ context.Context, channelID, userID string) error {
	delete(f.members, memberKey(channelID, userID))
	return nil
}

func newTestService(repo *fakeRepository) *channel.Service {
	return channel.NewService(repo, slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

/*
TestService_CreateChannel verifies type defaulting, slug generation, and the
automatic admin membership for the creator.
*/
func TestService_CreateChannel(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created := &channel.Channel{TeamID: "team-1", Name: "Release Planning"}
	err := service.CreateChannel(context.Background(), created, "creator-1")
	require.NoError(t, err)

	assert.Equal(t, channel.TypeOpen, created.Type)
	assert.Equal(t, "release-planning", created.Slug)
	assert.Len(t, created.ID, 36)

	member, err := repo.FindMember(context.Background(), created.ID, "creator-1")
	require.NoError(t, err)
	assert.True(t, member.SchemeAdmin)
}

/*
TestService_CreateChannel_Validation rejects missing fields and unknown
channel types.
*/
func TestService_CreateChannel_Validation(t *testing.T) {
	service := newTestService(newFakeRepository())

	tests := []struct {
		name    string
		channel *channel.Channel
	}{
		{"missing_name", &channel.Channel{TeamID: "team-1"}},
		{"missing_team", &channel.Channel{Name: "general"}},
		{"unknown_type", &channel.Channel{TeamID: "team-1", Name: "general", Type: channel.Type("X")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateChannel(context.Background(), tt.channel, "creator-1")
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_JoinChannel covers joining an existing channel and the guard
against joining a missing one.
*/
func TestService_JoinChannel(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created := &channel.Channel{TeamID: "team-1", Name: "general"}
	require.NoError(t, service.CreateChannel(context.Background(), created, "creator-1"))

	member, err := service.JoinChannel(context.Background(), created.ID, "user-2")
	require.NoError(t, err)
	assert.True(t, member.SchemeUser)
	assert.False(t, member.SchemeAdmin)

	_, err = service.JoinChannel(context.Background(), "missing", "user-2")
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_GetChannelBySlug resolves a channel within its team by slug.
*/
func TestService_GetChannelBySlug(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	created := &channel.Channel{TeamID: "team-1", Name: "War Room", Type: channel.TypePrivate}
	require.NoError(t, service.CreateChannel(context.Background(), created, "creator-1"))

	found, err := service.GetChannelBySlug(context.Background(), "team-1", "war-room")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, channel.TypePrivate, found.Type)

	_, err = service.GetChannelBySlug(context.Background(), "team-2", "war-room")
	assert.True(t, apperr.IsNotFound(err))
}
