package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/contactbook/backend/internal/model"
	"github.com/contactbook/backend/internal/token"
)

// memUserStore is an in-memory UserStore with the same no-rows semantics as
// the pgx-backed store.
type memUserStore struct {
	mu    sync.Mutex
	users map[string]*model.UserAccount
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]*model.UserAccount)}
}

func (m *memUserStore) CreateUser(_ context.Context, u *model.UserAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Username]; ok {
		return &pgconn.PgError{Code: "23505"}
	}
	cp := *u
	m.users[u.Username] = &cp
	return nil
}

func (m *memUserStore) GetUser(_ context.Context, username string) (*model.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (m *memUserStore) GetUserByRefreshToken(_ context.Context, refreshToken string) (*model.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.RefreshToken != nil && *u.RefreshToken == refreshToken {
			cp := *u
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memUserStore) SaveTokens(_ context.Context, username, tok string, tokExp int64, refresh string, refreshExp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Token, u.TokenExpiredAt = &tok, &tokExp
	u.RefreshToken, u.RefreshTokenExpiredAt = &refresh, &refreshExp
	return nil
}

func (m *memUserStore) RotateAccessToken(_ context.Context, username, newToken string, newExp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Token, u.TokenExpiredAt = &newToken, &newExp
	return nil
}

func (m *memUserStore) ClearTokensByAccessToken(_ context.Context, tok string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Token != nil && *u.Token == tok {
			u.Token, u.TokenExpiredAt = nil, nil
			u.RefreshToken, u.RefreshTokenExpiredAt = nil, nil
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (m *memUserStore) UpdateUserProfile(_ context.Context, username string, name, passwordHash *string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[username]
	if !ok {
		return pgx.ErrNoRows
	}
	if name != nil {
		u.Name = *name
	}
	if passwordHash != nil {
		u.PasswordHash = *passwordHash
	}
	return nil
}

func newAuthFixture(t *testing.T) (*AuthService, *memUserStore, *token.Codec) {
	t.Helper()
	codec, err := token.NewCodec("auth-test-secret", 30*time.Minute, 720*time.Hour)
	require.NoError(t, err)
	store := newMemUserStore()
	return NewAuthService(store, codec), store, codec
}

func seedUser(t *testing.T, store *memUserStore, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	store.users[username] = &model.UserAccount{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Test User",
	}
}

func TestLoginIssuesTokenPair(t *testing.T) {
	svc, store, codec := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")

	pair, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	subject, err := codec.Verify(pair.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
	assert.Greater(t, pair.ExpiredAt, time.Now().UnixMilli())
	assert.Greater(t, pair.RefreshTokenExpiredAt, pair.ExpiredAt)

	stored := store.users["alice"]
	require.NotNil(t, stored.Token)
	assert.Equal(t, pair.Token, *stored.Token)
	require.NotNil(t, stored.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestLoginRejectsWithIdenticalMessage(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")

	_, missErr := svc.Login(context.Background(), "nobody", "secret123")
	_, wrongErr := svc.Login(context.Background(), "alice", "wrong")

	require.Error(t, missErr)
	require.Error(t, wrongErr)
	// Unknown username and wrong password must be indistinguishable.
	assert.Equal(t, missErr.Error(), wrongErr.Error())
	assert.Equal(t, "username or password wrong", missErr.Error())
}

func TestLoginDisplacesPreviousSession(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")

	first, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	// Claim timestamps have second precision; wait so the second login
	// mints a distinct token.
	time.Sleep(1100 * time.Millisecond)

	second, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)
	require.NotEqual(t, first.Token, second.Token)

	stored := store.users["alice"]
	assert.Equal(t, second.Token, *stored.Token)

	user, err := svc.Authenticate(context.Background(), first.Token)
	require.NoError(t, err)
	assert.Nil(t, user, "displaced token must no longer authenticate")
}

func TestRefreshRotatesAccessTokenOnly(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")

	pair, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), "Bearer "+pair.RefreshToken)
	require.NoError(t, err)

	assert.Equal(t, pair.RefreshToken, rotated.RefreshToken, "refresh token survives rotation")
	stored := store.users["alice"]
	assert.Equal(t, rotated.Token, *stored.Token)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestRefreshHeaderValidation(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "missing", header: "", want: "Token is missing"},
		{name: "no-bearer-prefix", header: "Basic abc", want: "Token is invalid"},
		{name: "not-a-jwt", header: "Bearer garbage", want: "Refresh Token not Valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Refresh(context.Background(), tt.header)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestRefreshRejectsNeverIssuedToken(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")
	pair, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	// Well-formed, signed with the wrong key: must be rejected and the
	// account left untouched.
	foreign, err := token.NewCodec("some-other-secret", time.Minute, time.Hour)
	require.NoError(t, err)
	forged, _, err := foreign.MintRefresh("alice")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "Bearer "+forged)
	require.Error(t, err)

	stored := store.users["alice"]
	assert.Equal(t, pair.Token, *stored.Token)
	assert.Equal(t, pair.RefreshToken, *stored.RefreshToken)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	svc, _, codec := newAuthFixture(t)

	// Cryptographically valid but never stored: the stored value is the
	// revocation mechanism.
	orphan, _, err := codec.MintRefresh("alice")
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), "Bearer "+orphan)
	require.Error(t, err)
	assert.Equal(t, "User not found", err.Error())
}

func TestLogoutClearsTokensOnce(t *testing.T) {
	svc, store, _ := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")
	pair, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	user, err := svc.Authenticate(context.Background(), pair.Token)
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NoError(t, svc.Logout(context.Background(), user))

	stored := store.users["alice"]
	assert.Nil(t, stored.Token)
	assert.Nil(t, stored.RefreshToken)
	assert.Nil(t, stored.TokenExpiredAt)
	assert.Nil(t, stored.RefreshTokenExpiredAt)

	// The losing side of a concurrent logout race sees not found.
	err = svc.Logout(context.Background(), user)
	require.Error(t, err)
	assert.Equal(t, "user not found", err.Error())
}

func TestAuthenticate(t *testing.T) {
	svc, store, codec := newAuthFixture(t)
	seedUser(t, store, "alice", "secret123")
	pair, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), pair.Token)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("well-formed-but-not-stored", func(t *testing.T) {
		// A different TTL guarantees a token distinct from the stored one.
		orphan, err := codec.Mint("alice", 10*time.Minute)
		require.NoError(t, err)
		require.NotEqual(t, pair.Token, orphan)
		user, err := svc.Authenticate(context.Background(), orphan)
		require.NoError(t, err)
		assert.Nil(t, user, "mismatch with stored token must not authenticate")
	})

	t.Run("unknown-subject-is-fatal", func(t *testing.T) {
		ghost, _, err := codec.MintAccess("ghost")
		require.NoError(t, err)
		_, err = svc.Authenticate(context.Background(), ghost)
		require.Error(t, err, "resolvable signature with no account is a server fault")
	})

	t.Run("stored-expiry-is-authoritative", func(t *testing.T) {
		past := time.Now().Add(-time.Minute).UnixMilli()
		store.users["alice"].TokenExpiredAt = &past
		user, err := svc.Authenticate(context.Background(), pair.Token)
		require.NoError(t, err)
		assert.Nil(t, user, "stored expiry in the past must not authenticate")
	})
}
