package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/service/mocks"
	"ecommerce-api/internal/validator"
	"ecommerce-api/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/register", NewAuthHandler(svc).Register)
		return router
	}

	validBody := gin.H{
		"name":            "Test User",
		"email":           "test@example.com",
		"password":        "password123",
		"confirmPassword": "password123",
	}

	t.Run("success returns 201 with tokens", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RegisterFunc: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
				assert.Equal(t, "test@example.com", req.Email)
				return &models.AuthResponse{
					AccessToken:  "access",
					RefreshToken: "refresh",
					ExpiresIn:    900,
					User:         models.PublicProfile{Email: req.Email, Name: req.Name},
				}, nil
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/register", validBody)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("duplicate email returns 409", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RegisterFunc: func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
				return nil, apperrors.ErrUserAlreadyExists
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/register", validBody)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("mismatched confirmation returns 400 with field errors", func(t *testing.T) {
		body := gin.H{
			"name":            "Test User",
			"email":           "test@example.com",
			"password":        "password123",
			"confirmPassword": "different",
		}

		w := postJSON(t, newRouter(&mocks.MockAuthService{}), "/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Fields)
	})

	t.Run("invalid email returns 400", func(t *testing.T) {
		body := gin.H{
			"name":            "Test User",
			"email":           "not-an-email",
			"password":        "password123",
			"confirmPassword": "password123",
		}

		w := postJSON(t, newRouter(&mocks.MockAuthService{}), "/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/login", NewAuthHandler(svc).Login)
		return router
	}

	t.Run("success returns tokens", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
				return &models.AuthResponse{AccessToken: "access", RefreshToken: "refresh"}, nil
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/login", gin.H{
			"email":    "test@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access")
	})

	t.Run("bad credentials return 401", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			LoginFunc: func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/login", gin.H{
			"email":    "test@example.com",
			"password": "wrong",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/refresh-token", NewAuthHandler(svc).Refresh)
		return router
	}

	t.Run("success rotates tokens", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RefreshFunc: func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
				return &models.RefreshResponse{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 900}, nil
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/refresh-token", gin.H{"refreshToken": "old-refresh"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new-refresh")
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RefreshFunc: func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
				return nil, apperrors.ErrInvalidRefreshToken
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/refresh-token", gin.H{"refreshToken": "bad"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("theft detection returns 401", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			RefreshFunc: func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
				return nil, apperrors.ErrRefreshTokenTheft
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/refresh-token", gin.H{"refreshToken": "replayed"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "token theft")
	})

	t.Run("missing token returns 400", func(t *testing.T) {
		w := postJSON(t, newRouter(&mocks.MockAuthService{}), "/auth/refresh-token", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := primitive.NewObjectID()

	setUser := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	}

	t.Run("clears the session", func(t *testing.T) {
		var loggedOut primitive.ObjectID
		svc := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, id primitive.ObjectID) error {
				loggedOut = id
				return nil
			},
		}
		router := gin.New()
		router.POST("/auth/logout", setUser, NewAuthHandler(svc).Logout)

		w := postJSON(t, router, "/auth/logout", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, userID, loggedOut)
	})

	t.Run("unauthenticated returns 401", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/logout", NewAuthHandler(&mocks.MockAuthService{}).Logout)

		w := postJSON(t, router, "/auth/logout", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_ForgetPassword(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/forget-password", NewAuthHandler(svc).ForgetPassword)
		return router
	}

	t.Run("success returns confirmation", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			ForgetPasswordFunc: func(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error) {
				return &models.ForgetPasswordResponse{Message: "reset code sent to email"}, nil
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/forget-password", gin.H{"email": "test@example.com"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "reset code sent")
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			ForgetPasswordFunc: func(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/forget-password", gin.H{"email": "nobody@example.com"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_VerifyOTP(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/verify-otp", NewAuthHandler(svc).VerifyOTP)
		return router
	}

	t.Run("valid code returns 200", func(t *testing.T) {
		svc := &mocks.MockAuthService{}

		w := postJSON(t, newRouter(svc), "/auth/verify-otp", gin.H{
			"email": "test@example.com",
			"otp":   "123456",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non numeric code fails binding", func(t *testing.T) {
		w := postJSON(t, newRouter(&mocks.MockAuthService{}), "/auth/verify-otp", gin.H{
			"email": "test@example.com",
			"otp":   "abcdef",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("expired code returns 400", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			VerifyOTPFunc: func(ctx context.Context, req *models.VerifyOTPRequest) error {
				return apperrors.ErrOTPExpired
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/verify-otp", gin.H{
			"email": "test@example.com",
			"otp":   "123456",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	newRouter := func(svc *mocks.MockAuthService) *gin.Engine {
		router := gin.New()
		router.POST("/auth/reset-password", NewAuthHandler(svc).ResetPassword)
		return router
	}

	validBody := gin.H{
		"email":           "test@example.com",
		"otp":             "123456",
		"password":        "new-password",
		"confirmPassword": "new-password",
	}

	t.Run("success returns 200", func(t *testing.T) {
		var resetFor string
		svc := &mocks.MockAuthService{
			ResetPasswordFunc: func(ctx context.Context, req *models.ResetPasswordRequest) error {
				resetFor = req.Email
				return nil
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/reset-password", validBody)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "test@example.com", resetFor)
	})

	t.Run("invalid code returns 400", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			ResetPasswordFunc: func(ctx context.Context, req *models.ResetPasswordRequest) error {
				return apperrors.ErrOTPInvalid
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/reset-password", validBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown email returns 404", func(t *testing.T) {
		svc := &mocks.MockAuthService{
			ResetPasswordFunc: func(ctx context.Context, req *models.ResetPasswordRequest) error {
				return apperrors.ErrUserNotFound
			},
		}

		w := postJSON(t, newRouter(svc), "/auth/reset-password", validBody)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
