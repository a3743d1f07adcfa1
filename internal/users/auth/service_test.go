// Copyright (c) 2026 Loqui. All rights reserved.
// Author: dev@loqui.im

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loqui-im/loqui/internal/platform/apperr"
	"github.com/loqui-im/loqui/internal/platform/sec"
	"github.com/loqui-im/loqui/internal/users/auth"
)

// fakeUserRepo keeps accounts in memory, keyed by ID.
type fakeUserRepo struct {
	users map[string]*auth.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*auth.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (f *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *auth.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, newHash string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = newHash
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, userID string) error {
	user, ok := f.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	user.IsVerified = true
	return nil
}

// fakeSessionRepo keeps refresh sessions in memory, keyed by session ID.
type fakeSessionRepo struct {
	sessions map[string]*auth.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*auth.Session{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *auth.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range f.sessions {
		if session.TokenHash == tokenHash && !session.IsRevoked {
			return session, nil
		}
	}
	return nil, apperr.NotFound("Session")
}

func (f *fakeSessionRepo) Revoke(_ context.Context, sessionID string) error {
	session, ok := f.sessions[sessionID]
	if !ok {
		return apperr.NotFound("Session")
	}
	session.IsRevoked = true
	return nil
}

func (f *fakeSessionRepo) RevokeAll(_ context.Context, userID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeOthers(_ context.Context, userID, currentSessionID string) error {
	for _, session := range f.sessions {
		if session.UserID == userID && session.ID != currentSessionID {
			session.IsRevoked = true
		}
	}
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(_ context.Context) error { return nil }

func (f *fakeSessionRepo) active(userID string) int {
	count := 0
	for _, session := range f.sessions {
		if session.UserID == userID && !session.IsRevoked {
			count++
		}
	}
	return count
}

// fakeTokenStore backs both the reset and verification token repositories.
type fakeTokenStore struct {
	entries map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{entries: map[string]string{}}
}

func (f *fakeTokenStore) Set(_ context.Context, token, userID string, _ time.Duration) error {
	f.entries[token] = userID
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (string, error) {
	userID, ok := f.entries[token]
	if !ok {
		return "", apperr.Unauthorized("Invalid or expired token")
	}
	return userID, nil
}

func (f *fakeTokenStore) Delete(_ context.Context, token string) error {
	delete(f.entries, token)
	return nil
}

// fakeTokenProvider records the claims it was asked to sign.
type fakeTokenProvider struct {
	lastUserID   string
	lastUsername string
	lastRoles    string
	issued       int
}

func (f *fakeTokenProvider) GenerateAccessToken(userID, username, roles string, _ time.Duration) (string, error) {
	f.lastUserID = userID
	f.lastUsername = username
	f.lastRoles = roles
	f.issued++
	return "signed." + userID, nil
}

type serviceFixture struct {
	service  *auth.Service
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	resets   *fakeTokenStore
	verifies *fakeTokenStore
	tokens   *fakeTokenProvider
}

func newServiceFixture() *serviceFixture {
	fixture := &serviceFixture{
		users:    newFakeUserRepo(),
		sessions: newFakeSessionRepo(),
		resets:   newFakeTokenStore(),
		verifies: newFakeTokenStore(),
		tokens:   &fakeTokenProvider{},
	}
	fixture.service = auth.NewService(
		fixture.users,
		fixture.sessions,
		fixture.resets,
		fixture.verifies,
		fixture.tokens,
	)
	return fixture
}

func registerMember(t *testing.T, fixture *serviceFixture) *auth.User {
	t.Helper()
	user, err := fixture.service.Register(context.Background(), auth.RegisterInput{
		Username:  "jane.doe",
		Email:     "jane@loqui.im",
		Password:  "s3cret-passphrase",
		Nickname:  "Janie",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	return user
}

/*
TestService_Register verifies account creation: the member's naming fields
survive, the password is stored hashed, the default role token is assigned,
and a verification token is queued.
*/
func TestService_Register(t *testing.T) {
	fixture := newServiceFixture()

	user := registerMember(t, fixture)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane.doe", user.Username)
	assert.Equal(t, "Janie", user.Nickname)
	assert.Equal(t, "Jane", user.FirstName)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, sec.RoleSystemUser, user.Roles)
	assert.False(t, user.IsVerified)

	assert.NotEqual(t, "s3cret-passphrase", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret-passphrase", user.PasswordHash))

	// Verification token parked for the email side effect
	require.Len(t, fixture.verifies.entries, 1)
	for _, userID := range fixture.verifies.entries {
		assert.Equal(t, user.ID, userID)
	}
}

/*
TestService_Register_Conflicts verifies that duplicate identities are
rejected with a client-safe conflict.
*/
func TestService_Register_Conflicts(t *testing.T) {
	fixture := newServiceFixture()
	registerMember(t, fixture)

	testCases := []struct {
		name  string
		input auth.RegisterInput
	}{
		{
			name:  "duplicate_email",
			input: auth.RegisterInput{Username: "other", Email: "jane@loqui.im", Password: "pw"},
		},
		{
			name:  "duplicate_username",
			input: auth.RegisterInput{Username: "jane.doe", Email: "other@loqui.im", Password: "pw"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := fixture.service.Register(context.Background(), testCase.input)
			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "CONFLICT", appError.Code)
		})
	}
}

/*
TestService_Login verifies credential checks and that the member's
space-separated role string is carried into the signed access token claims.
*/
func TestService_Login(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	// Members can hold more than one role token
	user.Roles = sec.RoleSystemUser + " " + sec.RoleSystemAdmin

	session, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed."+user.ID, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)

	// Claim payload reflects the stored role string verbatim
	assert.Equal(t, user.ID, fixture.tokens.lastUserID)
	assert.Equal(t, "jane.doe", fixture.tokens.lastUsername)
	assert.Equal(t, sec.RoleSystemUser+" "+sec.RoleSystemAdmin, fixture.tokens.lastRoles)

	// The refresh token is stored hashed, never in the clear
	stored, err := fixture.sessions.FindByTokenHash(context.Background(), sec.HashToken(session.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)

	// Email works as the login identifier too
	_, err = fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane@loqui.im",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)
}

/*
TestService_Login_BadCredentials verifies the generic unauthorized response
for unknown identifiers and wrong passwords.
*/
func TestService_Login_BadCredentials(t *testing.T) {
	fixture := newServiceFixture()
	registerMember(t, fixture)

	testCases := []struct {
		name  string
		input auth.LoginInput
	}{
		{name: "unknown_member", input: auth.LoginInput{Login: "ghost", Password: "whatever"}},
		{name: "wrong_password", input: auth.LoginInput{Login: "jane.doe", Password: "nope"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := fixture.service.Login(context.Background(), testCase.input)
			require.Error(t, err)
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "UNAUTHORIZED", appError.Code)
		})
	}
}

/*
TestService_RefreshSession verifies the rotation contract: a refresh issues a
new token pair, revokes the old session, and the spent refresh token can
never be replayed.
*/
func TestService_RefreshSession(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	login, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)

	rotated, err := fixture.service.RefreshSession(context.Background(), login.RefreshToken, "agent", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, 2, fixture.tokens.issued)
	assert.Equal(t, user.Roles, fixture.tokens.lastRoles)

	// Exactly one live session remains after the rotation
	assert.Equal(t, 1, fixture.sessions.active(user.ID))

	// Replaying the spent token is rejected
	_, err = fixture.service.RefreshSession(context.Background(), login.RefreshToken, "agent", "10.0.0.1")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)
}

/*
TestService_Logout verifies revocation and that logging out an unknown token
is treated as already done.
*/
func TestService_Logout(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	login, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)

	require.NoError(t, fixture.service.Logout(context.Background(), login.RefreshToken))
	assert.Equal(t, 0, fixture.sessions.active(user.ID))

	// Idempotent for tokens that were never issued
	assert.NoError(t, fixture.service.Logout(context.Background(), "never-issued"))
}

/*
TestService_PasswordReset exercises the forgot-password round trip: request a
token, consume it, and verify every session was revoked and the token burned.
*/
func TestService_PasswordReset(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	_, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)

	token, err := fixture.service.RequestPasswordReset(context.Background(), "jane@loqui.im")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, fixture.service.ResetPassword(context.Background(), token, "brand-new-pass"))
	assert.True(t, sec.CheckPasswordHash("brand-new-pass", fixture.users.users[user.ID].PasswordHash))
	assert.Equal(t, 0, fixture.sessions.active(user.ID))
	assert.Empty(t, fixture.resets.entries)

	// Unknown email yields no token and no error, so callers can't probe accounts
	token, err = fixture.service.RequestPasswordReset(context.Background(), "ghost@loqui.im")
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestService_VerifyEmail verifies token consumption flips the verified flag.
*/
func TestService_VerifyEmail(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	var token string
	for stored := range fixture.verifies.entries {
		token = stored
	}
	require.NotEmpty(t, token)

	require.NoError(t, fixture.service.VerifyEmail(context.Background(), token))
	assert.True(t, fixture.users.users[user.ID].IsVerified)
	assert.Empty(t, fixture.verifies.entries)
}

/*
TestService_ChangePassword verifies the current-password gate and that other
devices are signed out while the acting session survives.
*/
func TestService_ChangePassword(t *testing.T) {
	fixture := newServiceFixture()
	user := registerMember(t, fixture)

	first, err := fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)
	_, err = fixture.service.Login(context.Background(), auth.LoginInput{
		Login:    "jane.doe",
		Password: "s3cret-passphrase",
	})
	require.NoError(t, err)

	err = fixture.service.ChangePassword(context.Background(), user.ID, "wrong", "next-pass", first.RefreshToken)
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "UNAUTHORIZED", appError.Code)

	err = fixture.service.ChangePassword(context.Background(), user.ID, "s3cret-passphrase", "next-pass", first.RefreshToken)
	require.NoError(t, err)
	assert.True(t, sec.CheckPasswordHash("next-pass", fixture.users.users[user.ID].PasswordHash))
	assert.Equal(t, 1, fixture.sessions.active(user.ID))

	stored, err := fixture.sessions.FindByTokenHash(context.Background(), sec.HashToken(first.RefreshToken))
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.UserID)
}
