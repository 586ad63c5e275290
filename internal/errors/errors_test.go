package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this email already exists"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrWrongPassword", ErrWrongPassword, "current password is incorrect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnauthorized", ErrUnauthorized, "unauthorized"},
		{"ErrForbidden", ErrForbidden, "insufficient permissions"},
		{"ErrInvalidRefreshToken", ErrInvalidRefreshToken, "invalid refresh token"},
		{"ErrRefreshTokenTheft", ErrRefreshTokenTheft, "invalid refresh token - possible token theft detected"},
		{"ErrPasswordChanged", ErrPasswordChanged, "password changed recently, please log in again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestPasswordResetErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrNoResetRequest", ErrNoResetRequest, "no password reset request found"},
		{"ErrOTPExpired", ErrOTPExpired, "reset code has expired"},
		{"ErrOTPInvalid", ErrOTPInvalid, "invalid reset code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrCategoryNotFound", ErrCategoryNotFound, "category not found"},
		{"ErrCategoryExists", ErrCategoryExists, "category with this name already exists"},
		{"ErrSubCategoryNotFound", ErrSubCategoryNotFound, "sub-category not found"},
		{"ErrBrandNotFound", ErrBrandNotFound, "brand not found"},
		{"ErrProductNotFound", ErrProductNotFound, "product not found"},
		{"ErrProductExists", ErrProductExists, "product with this title already exists"},
		{"ErrInvalidDiscountPrice", ErrInvalidDiscountPrice, "discounted price must be less than original price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

// TestErrorsAreDistinct verifies errors.Is does not conflate sentinel errors,
// since handlers map them to different HTTP status codes.
func TestErrorsAreDistinct(t *testing.T) {
	all := []error{
		ErrUserNotFound,
		ErrUserAlreadyExists,
		ErrInvalidCredentials,
		ErrWrongPassword,
		ErrPasswordMismatch,

		ErrUnauthorized,
		ErrForbidden,
		ErrInvalidRefreshToken,
		ErrRefreshTokenTheft,
		ErrPasswordChanged,

		ErrNoResetRequest,
		ErrOTPExpired,
		ErrOTPInvalid,

		ErrCategoryNotFound,
		ErrCategoryExists,
		ErrSubCategoryNotFound,
		ErrSubCategoryExists,
		ErrBrandNotFound,
		ErrBrandExists,
		ErrProductNotFound,
		ErrProductExists,
		ErrInvalidDiscountPrice,

		ErrFilterConfigNotFound,
	}

	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}
