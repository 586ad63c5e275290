package repository

import (
	"context"
	"errors"
	"time"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.User], error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// SetRefreshToken overwrites the single active refresh token; nil clears it.
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token *string) error
	// SetPasswordReset stores a pending OTP hash and its expiry, superseding
	// any earlier pending reset.
	SetPasswordReset(ctx context.Context, id primitive.ObjectID, hashedCode string, expiresAt time.Time) error
	// ClearPasswordReset drops the pending OTP state.
	ClearPasswordReset(ctx context.Context, id primitive.ObjectID) error
	// UpdatePassword sets a new password hash, stamps passwordChangedAt, and
	// clears the refresh token and any pending reset state.
	UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Slug == "" {
		user.Slug = slug.Make(user.Name)
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List returns a filtered, paginated window of users.
func (r *userRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.User], error) {
	return Paginate[models.User](ctx, r.collection, req, QueryOptions{Result: result})
}

// Update updates a user's profile fields
func (r *userRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Email != nil {
		// Check if new email is already taken by another user
		existing, _ := r.FindByEmail(ctx, *update.Email)
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrUserAlreadyExists
		}
		updateDoc["email"] = *update.Email
	}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = slug.Make(*update.Name)
	}
	if update.Phone != nil {
		updateDoc["phone"] = *update.Phone
	}
	if update.ProfileImage != nil {
		updateDoc["profileImage"] = *update.ProfileImage
	}
	if update.Role != nil {
		updateDoc["role"] = *update.Role
	}
	if update.Active != nil {
		updateDoc["active"] = *update.Active
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, result.Err()
	}

	// Fetch and return the updated user
	return r.FindByID(ctx, id)
}

// Delete removes a user from the database
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SetRefreshToken overwrites or clears the stored refresh token.
func (r *userRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token *string) error {
	update := bson.M{"updatedAt": time.Now()}
	if token != nil {
		update["refreshToken"] = *token
	} else {
		update["refreshToken"] = nil
	}
	return r.updateByID(ctx, id, bson.M{"$set": update})
}

// SetPasswordReset stores a pending OTP hash and expiry.
func (r *userRepository) SetPasswordReset(ctx context.Context, id primitive.ObjectID, hashedCode string, expiresAt time.Time) error {
	return r.updateByID(ctx, id, bson.M{"$set": bson.M{
		"passwordResetCode":    hashedCode,
		"passwordResetExpires": expiresAt,
		"updatedAt":            time.Now(),
	}})
}

// ClearPasswordReset drops pending OTP state.
func (r *userRepository) ClearPasswordReset(ctx context.Context, id primitive.ObjectID) error {
	return r.updateByID(ctx, id, bson.M{
		"$unset": bson.M{"passwordResetCode": "", "passwordResetExpires": ""},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
}

// UpdatePassword sets the new hash and revokes all outstanding session state
// in one write: passwordChangedAt invalidates already-issued access tokens
// and the cleared refresh token forces a re-login.
func (r *userRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	now := time.Now()
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{
			"password":          hashedPassword,
			"passwordChangedAt": now,
			"refreshToken":      nil,
			"updatedAt":         now,
		},
		"$unset": bson.M{"passwordResetCode": "", "passwordResetExpires": ""},
	})
}

func (r *userRepository) updateByID(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
