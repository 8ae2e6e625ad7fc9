package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joanaapp/joana-cli/internal/client/models"
	"github.com/stretchr/testify/require"
)

func setupManager(t *testing.T) (*Manager, *Store) {
	t.Helper()
	store, _ := setupStore(t)
	return NewManager(store, testLogger()), store
}

func testUser() *models.User {
	return &models.User{ID: "u1", Name: "Ana", Email: "ana@example.com"}
}

func TestManager_InitialStateIsLoading(t *testing.T) {
	m, _ := setupManager(t)

	s := m.State()
	require.True(t, s.Loading)
	require.False(t, s.Authenticated)
}

func TestManager_Init_ValidityMatrix(t *testing.T) {
	tests := []struct {
		name      string
		saveToken bool
		saveUser  bool
		want      bool
	}{
		{"both present", true, true, true},
		{"token only", true, false, false},
		{"user only", false, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := setupManager(t)
			ctx := context.Background()

			if tt.saveToken {
				require.NoError(t, store.SaveToken(ctx, "tok"))
			}
			if tt.saveUser {
				require.NoError(t, store.SaveUser(ctx, testUser()))
			}

			m.Init(ctx)

			s := m.State()
			require.False(t, s.Loading, "loading must end after init")
			require.Equal(t, tt.want, s.Authenticated)
			if tt.want {
				require.Equal(t, "u1", s.User.ID)
			} else {
				require.Nil(t, s.User)
			}
		})
	}
}

func TestManager_InitRunsOnce(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	m.Init(ctx)
	require.False(t, m.State().Authenticated)

	// a session appearing later must not be picked up by a second Init
	require.NoError(t, store.SaveSession(ctx, &models.Session{Token: "tok", User: *testUser()}))
	m.Init(ctx)
	require.False(t, m.State().Authenticated)
}

func TestManager_Establish(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	sess := &models.Session{Token: "tok", User: *testUser()}
	require.NoError(t, m.Establish(ctx, sess))

	s := m.State()
	require.True(t, s.Authenticated)
	require.False(t, s.Loading)
	require.Equal(t, "u1", s.User.ID)

	token, ok := store.Token(ctx)
	require.True(t, ok)
	require.Equal(t, "tok", token)
	user, ok := store.User(ctx)
	require.True(t, ok)
	require.Equal(t, "u1", user.ID)
}

func TestManager_LogoutIdempotent(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))

	require.NoError(t, m.Logout(ctx))
	first := m.State()

	require.NoError(t, m.Logout(ctx), "second logout must be a no-op, not an error")
	require.Equal(t, first, m.State())

	require.False(t, first.Authenticated)
	require.Nil(t, first.User)
	_, ok := store.Token(ctx)
	require.False(t, ok)
}

func TestManager_HandleUnauthorized(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))

	var notified []State
	cancel := m.Subscribe(func(s State) { notified = append(notified, s) })
	defer cancel()

	m.HandleUnauthorized(ctx)

	s := m.State()
	require.False(t, s.Authenticated)
	require.Nil(t, s.User)

	_, ok := store.Token(ctx)
	require.False(t, ok, "401 must clear the stored session")

	require.Len(t, notified, 1)
	require.False(t, notified[0].Authenticated)
	require.True(t, notified[0].Revoked, "a 401 is a server-forced logout")

	// already logged out: no further notifications
	m.HandleUnauthorized(ctx)
	require.Len(t, notified, 1)
}

func TestManager_RevokedDistinguishesLogoutFrom401(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	var notified []State
	cancel := m.Subscribe(func(s State) { notified = append(notified, s) })
	defer cancel()

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))
	require.NoError(t, m.Logout(ctx))
	require.Len(t, notified, 2)
	require.False(t, notified[1].Revoked, "a voluntary logout is not a revocation")

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))
	require.False(t, m.State().Revoked, "a new session clears the revoked mark")

	m.HandleUnauthorized(ctx)
	require.True(t, m.State().Revoked)
}

func TestManager_SubscribeAndCancel(t *testing.T) {
	m, _ := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	var calls int
	cancel := m.Subscribe(func(State) { calls++ })

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))
	require.Equal(t, 1, calls)

	cancel()
	require.NoError(t, m.Logout(ctx))
	require.Equal(t, 1, calls, "cancelled subscriber must not be notified")
}

func TestManager_SetUser(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()
	m.Init(ctx)

	require.NoError(t, m.Establish(ctx, &models.Session{Token: "tok", User: *testUser()}))

	updated := testUser()
	updated.Name = "Ana Maria"
	require.NoError(t, m.SetUser(ctx, updated))

	require.Equal(t, "Ana Maria", m.State().User.Name)
	stored, ok := store.User(ctx)
	require.True(t, ok)
	require.Equal(t, "Ana Maria", stored.Name)
}

func TestManager_TokenExpiry(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	require.True(t, m.TokenExpiry(ctx).IsZero(), "no token, no expiry")

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, store.SaveToken(ctx, signed))

	require.True(t, exp.Equal(m.TokenExpiry(ctx)))
}

func TestManager_TokenExpiry_OpaqueToken(t *testing.T) {
	m, store := setupManager(t)
	ctx := context.Background()

	require.NoError(t, store.SaveToken(ctx, "not-a-jwt"))
	require.True(t, m.TokenExpiry(ctx).IsZero())
}
