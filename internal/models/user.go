// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user in the system. RefreshToken mirrors the single
// currently valid refresh token; PasswordChangedAt gates access tokens issued
// before the last password change; PasswordResetCode/Expires hold the pending
// OTP state for the reset flow.
type User struct {
	ID                   primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name                 string             `json:"name" bson:"name"`
	Slug                 string             `json:"slug" bson:"slug"`
	Email                string             `json:"email" bson:"email"`
	Phone                string             `json:"phone,omitempty" bson:"phone,omitempty"`
	ProfileImage         string             `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	Password             string             `json:"-" bson:"password"`
	Role                 string             `json:"role" bson:"role"`
	Active               bool               `json:"active" bson:"active"`
	RefreshToken         *string            `json:"-" bson:"refreshToken,omitempty"`
	PasswordChangedAt    *time.Time         `json:"-" bson:"passwordChangedAt,omitempty"`
	PasswordResetCode    *string            `json:"-" bson:"passwordResetCode,omitempty"`
	PasswordResetExpires *time.Time         `json:"-" bson:"passwordResetExpires,omitempty"`
	CreatedAt            time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// PublicProfile is the subset of user fields safe to return from auth
// endpoints.
type PublicProfile struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Slug  string             `json:"slug"`
	Role  string             `json:"role"`
}

// Public returns the user's public profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Slug:  u.Slug,
		Role:  u.Role,
	}
}

// CreateUserRequest is the admin payload for creating a user directly.
type CreateUserRequest struct {
	Name         string `json:"name" binding:"required,min=3"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty"`
	ProfileImage string `json:"profileImage" binding:"omitempty,url"`
	Password     string `json:"password" binding:"required,min=6"`
	Role         string `json:"role" binding:"omitempty,oneof=user admin"`
	Active       *bool  `json:"active" binding:"omitempty"`
}

// UpdateUserRequest is the admin payload for updating a user.
type UpdateUserRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=3"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Phone        *string `json:"phone" binding:"omitempty"`
	ProfileImage *string `json:"profileImage" binding:"omitempty,url"`
	Role         *string `json:"role" binding:"omitempty,oneof=user admin"`
	Active       *bool   `json:"active" binding:"omitempty"`
}

// UpdateMeRequest is the self-service profile update payload. Role and
// active status are deliberately not settable here.
type UpdateMeRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone" binding:"omitempty"`
}

// ChangePasswordRequest changes a password given the current one.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}

// AdminChangePasswordRequest sets a user's password without knowing the
// current one.
type AdminChangePasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=NewPassword"`
}
