// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package account_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/users/account"
	"github.com/loqui-im/loqui/internal/users/auth"
	"github.com/loqui-im/loqui/internal/users/profile"
)

// fakeAccountRepo holds a single mutable user record.
type fakeAccountRepo struct {
	user    *auth.User
	deleted bool
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if f.user == nil || f.user.ID != id || f.deleted {
		return nil, apperr.NotFound("User")
	}
	return f.user, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, user *auth.User) error {
	f.user = user
	return nil
}

func (f *fakeAccountRepo) SoftDelete(_ context.Context, _ string) error {
	f.deleted = true
	return nil
}

// fakePreferencesRepo stores preferences keyed by user ID.
type fakePreferencesRepo struct {
	prefs map[string]*account.Preferences
}

func (f *fakePreferencesRepo) FindByUserID(_ context.Context, userID string) (*account.Preferences, error) {
	if p, ok := f.prefs[userID]; ok {
		return p, nil
	}
	return nil, apperr.NotFound("Preferences")
}

func (f *fakePreferencesRepo) Upsert(_ context.Context, prefs *account.Preferences) error {
	if f.prefs == nil {
		f.prefs = make(map[string]*account.Preferences)
	}
	f.prefs[prefs.UserID] = prefs
	return nil
}

// fakeSessionRepo satisfies the session contract with no-ops.
type fakeSessionRepo struct {
	sessions []account.SessionInfo
	revoked  []string
}

func (f *fakeSessionRepo) FindActiveByUserID(_ context.Context, _ string) ([]account.SessionInfo, error) {
	return f.sessions, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, _, sessionID string) error {
	f.revoked = append(f.revoked, sessionID)
	return nil
}

func (f *fakeSessionRepo) RevokeOthers(_ context.Context, _, _ string) error { return nil }

func (f *fakeSessionRepo) RevokeAll(_ context.Context, _ string) error { return nil }

func newTestService(accounts *fakeAccountRepo, prefs *fakePreferencesRepo) *account.Service {
	return account.NewService(
		accounts, prefs, &fakeSessionRepo{},
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
}

/*
TestService_GetPreferences_Defaults verifies the fallback settings returned
when a user has never saved preferences.
*/
func TestService_GetPreferences_Defaults(t *testing.T) {
	service := newTestService(&fakeAccountRepo{}, &fakePreferencesRepo{})

	prefs, err := service.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", prefs.UserID)
	assert.Equal(t, profile.DisplayPreferNickname, prefs.NameDisplay)
	assert.Equal(t, "UTC", prefs.Timezone)
	assert.True(t, prefs.EmailNotify)
	assert.True(t, prefs.ShowUnread)
	assert.False(t, prefs.MilitaryTime)
}

/*
TestService_UpdatePreferences covers persistence of valid settings and the
rejection of unknown name_display values.
*/
func TestService_UpdatePreferences(t *testing.T) {
	prefsRepo := &fakePreferencesRepo{}
	service := newTestService(&fakeAccountRepo{}, prefsRepo)

	valid := &account.Preferences{
		UserID:      "user-1",
		NameDisplay: profile.DisplayPreferFullName,
		Timezone:    "Europe/Berlin",
	}
	require.NoError(t, service.UpdatePreferences(context.Background(), valid))
	assert.False(t, valid.UpdatedAt.IsZero())

	stored, err := service.GetPreferences(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, profile.DisplayPreferFullName, stored.NameDisplay)

	invalid := &account.Preferences{UserID: "user-1", NameDisplay: "initials"}
	err = service.UpdatePreferences(context.Background(), invalid)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_UpdateProfile applies partial name deltas and leaves untouched
fields alone.
*/
func TestService_UpdateProfile(t *testing.T) {
	accounts := &fakeAccountRepo{user: &auth.User{
		ID:        "user-1",
		Username:  "jane.doe",
		Nickname:  "JD",
		FirstName: "Jane",
		LastName:  "Doe",
	}}
	service := newTestService(accounts, &fakePreferencesRepo{})

	nickname := "Janey"
	updated, err := service.UpdateProfile(context.Background(), "user-1", account.UpdateProfileInput{
		Nickname: &nickname,
	})
	require.NoError(t, err)

	assert.Equal(t, "Janey", updated.Nickname)
	assert.Equal(t, "Jane", updated.FirstName)
	assert.Equal(t, "jane.doe", updated.Username)
}
