// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrPasswordMismatch   = errors.New("password confirmation does not match password")
)

// Auth errors
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("insufficient permissions")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenTheft   = errors.New("invalid refresh token - possible token theft detected")
	ErrPasswordChanged     = errors.New("password changed recently, please log in again")
)

// Password reset errors
var (
	ErrNoResetRequest = errors.New("no password reset request found")
	ErrOTPExpired     = errors.New("reset code has expired")
	ErrOTPInvalid     = errors.New("invalid reset code")
)

// Catalog errors
var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryExists       = errors.New("category with this name already exists")
	ErrSubCategoryNotFound  = errors.New("sub-category not found")
	ErrSubCategoryExists    = errors.New("sub-category with this name already exists")
	ErrBrandNotFound        = errors.New("brand not found")
	ErrBrandExists          = errors.New("brand with this name already exists")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductExists        = errors.New("product with this title already exists")
	ErrInvalidDiscountPrice = errors.New("discounted price must be less than original price")
)

// Filter errors
var (
	// ErrFilterConfigNotFound indicates a programming error: a list endpoint
	// asked for an entity type that was never registered.
	ErrFilterConfigNotFound = errors.New("filter configuration not found for entity type")
)
