package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"ecommerce-api/internal/cache"
	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository/mocks"
	"ecommerce-api/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCache is a map-backed Cache for tests.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = data
	return nil
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, dest)
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

func TestUserService_GetUser(t *testing.T) {
	t.Run("caches the user after the first read", func(t *testing.T) {
		user := testUser()
		calls := 0
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				calls++
				return user, nil
			},
		}
		c := newMemoryCache()
		svc := NewUserService(repo, c, filter.NewRegistry())

		first, err := svc.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		second, err := svc.GetUser(context.Background(), user.ID)
		require.NoError(t, err)

		assert.Equal(t, 1, calls, "second read should hit the cache")
		assert.Equal(t, first.Email, second.Email)
		assert.True(t, c.has(cache.UserCacheKey(user.ID.Hex())))
	})

	t.Run("missing user is not cached", func(t *testing.T) {
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		c := newMemoryCache()
		svc := NewUserService(repo, c, filter.NewRegistry())

		_, err := svc.GetUser(context.Background(), primitive.NewObjectID())

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Empty(t, c.items)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("invalidates the cached user", func(t *testing.T) {
		user := testUser()
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return user, nil
			},
			UpdateFunc: func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
				return user, nil
			},
		}
		c := newMemoryCache()
		svc := NewUserService(repo, c, filter.NewRegistry())

		_, err := svc.GetUser(context.Background(), user.ID)
		require.NoError(t, err)
		require.True(t, c.has(cache.UserCacheKey(user.ID.Hex())))

		name := "New Name"
		_, err = svc.UpdateUser(context.Background(), user.ID, &models.UpdateUserRequest{Name: &name})

		require.NoError(t, err)
		assert.False(t, c.has(cache.UserCacheKey(user.ID.Hex())))
	})
}

func TestUserService_ChangeMyPassword(t *testing.T) {
	t.Run("wrong current password is rejected", func(t *testing.T) {
		user := testUser()
		var updated bool
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return user, nil
			},
			UpdatePasswordFunc: func(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
				updated = true
				return nil
			},
		}
		svc := NewUserService(repo, newMemoryCache(), filter.NewRegistry())

		err := svc.ChangeMyPassword(context.Background(), user.ID, &models.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "new-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrWrongPassword)
		assert.False(t, updated)
	})

	t.Run("correct current password updates the hash and drops the cache", func(t *testing.T) {
		user := testUser()
		var newHash string
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return user, nil
			},
			UpdatePasswordFunc: func(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
				newHash = hashedPassword
				return nil
			},
		}
		c := newMemoryCache()
		require.NoError(t, c.Set(context.Background(), cache.UserCacheKey(user.ID.Hex()), user, time.Minute))
		svc := NewUserService(repo, c, filter.NewRegistry())

		err := svc.ChangeMyPassword(context.Background(), user.ID, &models.ChangePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "new-password",
		})

		require.NoError(t, err)
		assert.NoError(t, auth.CheckPassword("new-password", newHash))
		assert.False(t, c.has(cache.UserCacheKey(user.ID.Hex())))
	})
}

func TestUserService_CreateUser(t *testing.T) {
	t.Run("hashes the password and defaults to active", func(t *testing.T) {
		var created *models.User
		repo := &mocks.MockUserRepository{
			CreateFunc: func(ctx context.Context, user *models.User) error {
				created = user
				return nil
			},
		}
		svc := NewUserService(repo, newMemoryCache(), filter.NewRegistry())

		user, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "password123",
			Role:     models.RoleUser,
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.True(t, user.Active)
		assert.NotEqual(t, "password123", created.Password)
		assert.NoError(t, auth.CheckPassword("password123", created.Password))
	})

	t.Run("explicit inactive flag is honored", func(t *testing.T) {
		repo := &mocks.MockUserRepository{}
		svc := NewUserService(repo, newMemoryCache(), filter.NewRegistry())
		inactive := false

		user, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{
			Name:     "New User",
			Email:    "new@example.com",
			Password: "password123",
			Active:   &inactive,
		})

		require.NoError(t, err)
		assert.False(t, user.Active)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	user := testUser()
	var deleted primitive.ObjectID
	repo := &mocks.MockUserRepository{
		DeleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
			deleted = id
			return nil
		},
	}
	c := newMemoryCache()
	require.NoError(t, c.Set(context.Background(), cache.UserCacheKey(user.ID.Hex()), user, time.Minute))
	svc := NewUserService(repo, c, filter.NewRegistry())

	err := svc.DeleteUser(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted)
	assert.False(t, c.has(cache.UserCacheKey(user.ID.Hex())))
}

func TestUserService_AdminChangePassword(t *testing.T) {
	t.Run("unknown user is rejected", func(t *testing.T) {
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		svc := NewUserService(repo, newMemoryCache(), filter.NewRegistry())

		err := svc.AdminChangePassword(context.Background(), primitive.NewObjectID(), &models.AdminChangePasswordRequest{
			NewPassword: "new-password",
		})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("sets the password without the current one", func(t *testing.T) {
		user := testUser()
		var newHash string
		repo := &mocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return user, nil
			},
			UpdatePasswordFunc: func(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
				newHash = hashedPassword
				return nil
			},
		}
		svc := NewUserService(repo, newMemoryCache(), filter.NewRegistry())

		err := svc.AdminChangePassword(context.Background(), user.ID, &models.AdminChangePasswordRequest{
			NewPassword: "new-password",
		})

		require.NoError(t, err)
		assert.NoError(t, auth.CheckPassword("new-password", newHash))
	})
}
