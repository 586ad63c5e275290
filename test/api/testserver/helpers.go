//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/auth"
	"ecommerce-api/pkg/response"
	"ecommerce-api/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, email, password string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "register response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// Login logs in a user and returns the auth response containing tokens.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "login response should be successful")

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// GetAccessToken extracts the access token from an auth response.
func GetAccessToken(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")
	require.NotEmpty(t, token)
	return token
}

// GetRefreshToken extracts the refresh token from an auth response.
func GetRefreshToken(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	token, ok := data["refreshToken"].(string)
	require.True(t, ok, "refreshToken should be a string")
	require.NotEmpty(t, token)
	return token
}

// CreateAuthenticatedUser registers a user and returns their access token.
func (ah *AuthHelper) CreateAuthenticatedUser(t *testing.T, name, email, password string) string {
	t.Helper()

	data := ah.RegisterUser(t, name, email, password)
	return GetAccessToken(t, data)
}

// CreateAdminUser seeds an admin directly in the database, since there is no
// public endpoint to create one, then logs in and returns the access token.
func (ah *AuthHelper) CreateAdminUser(t *testing.T, email, password string) string {
	t.Helper()

	hashed, err := auth.HashPassword(password)
	require.NoError(t, err, "failed to hash admin password")

	admin := &models.User{
		Name:     "Test Admin",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
		Active:   true,
	}
	err = ah.server.UserRepo.Create(context.Background(), admin)
	require.NoError(t, err, "failed to seed admin user")

	data := ah.Login(t, email, password)
	return GetAccessToken(t, data)
}

// SeedUser directly inserts a user into the database (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User) *models.User {
	t.Helper()

	err := ah.server.UserRepo.Create(context.Background(), user)
	require.NoError(t, err, "failed to seed user")
	return user
}

// CatalogHelper creates catalog entities through the API for tests that need
// categories, brands, or products in place.
type CatalogHelper struct {
	server *TestServer
}

// NewCatalogHelper creates a new catalog helper.
func NewCatalogHelper(server *TestServer) *CatalogHelper {
	return &CatalogHelper{server: server}
}

// CreateCategory creates a category as the given admin and returns its data.
func (ch *CatalogHelper) CreateCategory(t *testing.T, adminToken, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateCategoryRequest{Name: name}
	return ch.createEntity(t, adminToken, "/api/v1/categories", req, "create category")
}

// CreateBrand creates a brand as the given admin and returns its data.
func (ch *CatalogHelper) CreateBrand(t *testing.T, adminToken, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateBrandRequest{Name: name}
	return ch.createEntity(t, adminToken, "/api/v1/brands", req, "create brand")
}

// CreateSubCategory creates a sub-category under categoryID and returns its data.
func (ch *CatalogHelper) CreateSubCategory(t *testing.T, adminToken, name, categoryID string) map[string]interface{} {
	t.Helper()

	req := models.CreateSubCategoryRequest{Name: name, Category: categoryID}
	return ch.createEntity(t, adminToken, "/api/v1/sub-categories", req, "create sub-category")
}

// CreateProduct creates a product and returns its data.
func (ch *CatalogHelper) CreateProduct(t *testing.T, adminToken string, req models.CreateProductRequest) map[string]interface{} {
	t.Helper()

	return ch.createEntity(t, adminToken, "/api/v1/products", req, "create product")
}

func (ch *CatalogHelper) createEntity(t *testing.T, token, path string, body interface{}, what string) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ch.server.Router, http.MethodPost, path, token, body)
	require.Equal(t, http.StatusCreated, w.Code, "%s should return 201, got: %s", what, w.Body.String())

	var resp response.Response
	testutil.ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "%s response should be successful", what)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	return data
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data. It handles both
// direct id fields and nested user objects from auth responses.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as an ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")
	return oid
}
