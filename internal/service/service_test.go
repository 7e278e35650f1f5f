package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divvyhq/divvy/internal/auth"
	"github.com/divvyhq/divvy/internal/models"
	"github.com/divvyhq/divvy/internal/storage"
	"github.com/divvyhq/divvy/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store storage.Store, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "not-a-real-hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func TestAuthService(t *testing.T) {
	store := newTestStore(t)
	jwtManager := auth.NewJWTManager("test-secret-key-for-auth", time.Hour)
	svc := NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, store)
	ctx := context.Background()

	t.Run("register and login", func(t *testing.T) {
		user, token, err := svc.Register(ctx, "alice@example.com", "Alice", "correct horse battery")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash, "password must not be stored in clear")

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)

		logged, loginToken, err := svc.Login(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, user.ID, logged.ID)
		assert.NotEmpty(t, loginToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "alice@example.com", "wrong")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "alice@example.com", "Other Alice", "another password")
		assert.ErrorIs(t, err, auth.ErrEmailExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Register(ctx, "", "Nameless", "some password")
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, _, err = svc.Login(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
