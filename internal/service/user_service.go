// Package service contains business logic for the application.
package service

import (
	"context"
	"net/url"
	"time"

	"ecommerce-api/internal/cache"
	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository"
	"ecommerce-api/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations, both self-service
// and admin.
type UserService struct {
	repo     repository.UserRepository
	cache    cache.Cache
	registry *filter.Registry
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, c cache.Cache, registry *filter.Registry) *UserService {
	return &UserService{
		repo:     repo,
		cache:    c,
		registry: registry,
	}
}

// GetMe retrieves the authenticated user's own record.
func (s *UserService) GetMe(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return s.GetUser(ctx, userID)
}

// UpdateMe updates the authenticated user's own profile. Role and active
// status are not reachable through this path.
func (s *UserService) UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error) {
	update := &models.UpdateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	return s.UpdateUser(ctx, userID, update)
}

// ChangeMyPassword changes the user's password after checking the current
// one. The repository write stamps passwordChangedAt and clears the refresh
// token, so other sessions are revoked.
func (s *UserService) ChangeMyPassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := auth.CheckPassword(req.CurrentPassword, user.Password); err != nil {
		return apperrors.ErrWrongPassword
	}

	return s.setPassword(ctx, userID, req.NewPassword)
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	cacheKey := cache.UserCacheKey(id.Hex())
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil // Cache hit
	}

	dbUser, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore errors - cache is best effort)
	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// ListUsers returns a filtered, paginated window of users. Sensitive fields
// are projected out by the entity's default selection.
func (s *UserService) ListUsers(ctx context.Context, query url.Values) (*models.Page[models.User], error) {
	filterFn, err := s.registry.Get(filter.EntityUsers)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filterFn(query), models.ParsePageRequest(query))
}

// CreateUser creates a user directly (admin path).
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		ProfileImage: req.ProfileImage,
		Password:     hashedPassword,
		Role:         req.Role,
		Active:       true,
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUser updates a user's information.
func (s *UserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return user, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Invalidate cache
	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))

	return nil
}

// AdminChangePassword sets a user's password without the current one.
func (s *UserService) AdminChangePassword(ctx context.Context, id primitive.ObjectID, req *models.AdminChangePasswordRequest) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.setPassword(ctx, id, req.NewPassword)
}

func (s *UserService) setPassword(ctx context.Context, id primitive.ObjectID, password string) error {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, hashedPassword); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id.Hex()))
	return nil
}
