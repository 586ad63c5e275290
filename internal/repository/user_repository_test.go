package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "hashedpassword",
			Active:   true,
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, models.RoleUser, user.Role, "role defaults to user")
		assert.Equal(t, "test-user", user.Slug, "slug derived from name")
		assert.NotZero(t, user.CreatedAt)
		assert.NotZero(t, user.UpdatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user1 := &models.User{Name: "User 1", Email: "duplicate@example.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user1))

		user2 := &models.User{Name: "User 2", Email: "duplicate@example.com", Password: "hash"}
		err := repo.Create(ctx, user2)

		assert.ErrorIs(t, err, apperrors.ErrUserAlreadyExists)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Find Me", Email: "findme@example.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))

		found, err := repo.FindByEmail(ctx, "findme@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("returns error for unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_SetRefreshToken(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("stores and clears the token", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Session User", Email: "session@example.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))

		token := "refresh-token-value"
		require.NoError(t, repo.SetRefreshToken(ctx, user.ID, &token))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.RefreshToken)
		assert.Equal(t, token, *found.RefreshToken)

		require.NoError(t, repo.SetRefreshToken(ctx, user.ID, nil))

		found, err = repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, found.RefreshToken)
	})

	t.Run("returns error for unknown user", func(t *testing.T) {
		err := repo.SetRefreshToken(ctx, primitive.NewObjectID(), nil)

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_PasswordReset(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("set and clear reset state", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Reset User", Email: "reset@example.com", Password: "hash"}
		require.NoError(t, repo.Create(ctx, user))

		expiresAt := time.Now().Add(10 * time.Minute)
		require.NoError(t, repo.SetPasswordReset(ctx, user.ID, "hashed-code", expiresAt))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.PasswordResetCode)
		assert.Equal(t, "hashed-code", *found.PasswordResetCode)
		require.NotNil(t, found.PasswordResetExpires)
		assert.WithinDuration(t, expiresAt, *found.PasswordResetExpires, time.Second)

		require.NoError(t, repo.ClearPasswordReset(ctx, user.ID))

		found, err = repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, found.PasswordResetCode)
		assert.Nil(t, found.PasswordResetExpires)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("revokes all session state in one write", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Name: "Password User", Email: "password@example.com", Password: "old-hash"}
		require.NoError(t, repo.Create(ctx, user))

		token := "refresh-token"
		require.NoError(t, repo.SetRefreshToken(ctx, user.ID, &token))
		require.NoError(t, repo.SetPasswordReset(ctx, user.ID, "hashed-code", time.Now().Add(10*time.Minute)))

		require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", found.Password)
		assert.NotNil(t, found.PasswordChangedAt)
		assert.Nil(t, found.RefreshToken)
		assert.Nil(t, found.PasswordResetCode)
		assert.Nil(t, found.PasswordResetExpires)
	})
}

func TestUserRepository_List(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	registry := filter.NewRegistry()
	ctx := context.Background()

	tdb.ClearCollection(t, "users")
	seed := []*models.User{
		{Name: "Admin User", Email: "admin@example.com", Password: "hash", Role: models.RoleAdmin, Active: true},
		{Name: "Alice", Email: "alice@example.com", Password: "hash", Active: true},
		{Name: "Bob", Email: "bob@example.com", Password: "hash", Active: false},
	}
	for _, u := range seed {
		require.NoError(t, repo.Create(ctx, u))
	}

	filterFn, err := registry.Get(filter.EntityUsers)
	require.NoError(t, err)

	t.Run("filters by role", func(t *testing.T) {
		query := url.Values{"role": {models.RoleAdmin}}
		page, err := repo.List(ctx, filterFn(query), models.ParsePageRequest(query))

		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "admin@example.com", page.Results[0].Email)
	})

	t.Run("default selection hides sensitive fields", func(t *testing.T) {
		query := url.Values{}
		page, err := repo.List(ctx, filterFn(query), models.ParsePageRequest(query))

		require.NoError(t, err)
		require.NotEmpty(t, page.Results)
		for _, u := range page.Results {
			assert.Empty(t, u.Password)
			assert.Nil(t, u.RefreshToken)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		query := url.Values{"page": {"1"}, "limit": {"2"}}
		page, err := repo.List(ctx, filterFn(query), models.ParsePageRequest(query))

		require.NoError(t, err)
		assert.Len(t, page.Results, 2)
		assert.Equal(t, 3, page.Pagination.TotalCount)
		assert.Equal(t, 2, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
	})
}
