//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"ecommerce-api/internal/cache"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/handler"
	"ecommerce-api/internal/repository"
	"ecommerce-api/internal/router"
	"ecommerce-api/internal/service"
	"ecommerce-api/pkg/auth"
	"ecommerce-api/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret signs access tokens in tests.
	TestAccessTokenSecret = "test-access-secret-for-api-tests"
	// TestRefreshTokenSecret signs refresh tokens in tests. Kept distinct
	// from the access secret so cross-validation bugs surface here too.
	TestRefreshTokenSecret = "test-refresh-secret-for-api-tests"
	// TestAccessTokenExpiry is the access token lifetime used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token lifetime used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestOTPExpiry is the password reset code lifetime used in tests.
	TestOTPExpiry = 10 * time.Minute
	// TestDBName is the MongoDB database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests. No mailer is
// wired, so forget-password responses carry the reset code directly, which
// lets tests drive the full OTP flow over HTTP.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo        repository.UserRepository
	CategoryRepo    repository.CategoryRepository
	SubCategoryRepo repository.SubCategoryRepository
	BrandRepo       repository.BrandRepository
	ProductRepo     repository.ProductRepository

	// Services (for direct service access in tests)
	AuthService        service.AuthServicer
	UserService        service.UserServicer
	CategoryService    service.CategoryServicer
	SubCategoryService service.SubCategoryServicer
	BrandService       service.BrandServicer
	ProductService     service.ProductServicer

	// Auth
	JWTManager *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)

	jwtManager := auth.NewJWTManager(
		TestAccessTokenSecret,
		TestRefreshTokenSecret,
		TestAccessTokenExpiry,
		TestRefreshTokenExpiry,
	)

	registry := filter.NewRegistry()

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	categoryRepo := repository.NewCategoryRepository(mongoDB.Database)
	subCategoryRepo := repository.NewSubCategoryRepository(mongoDB.Database)
	brandRepo := repository.NewBrandRepository(mongoDB.Database)
	productRepo := repository.NewProductRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTManager: jwtManager,
		OTPExpiry:  TestOTPExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache, registry)
	categoryService := service.NewCategoryService(categoryRepo, registry)
	subCategoryService := service.NewSubCategoryService(subCategoryRepo, categoryRepo, registry)
	brandService := service.NewBrandService(brandRepo, registry)
	productService := service.NewProductService(productRepo, categoryRepo, subCategoryRepo, brandRepo, registry)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	subCategoryHandler := handler.NewSubCategoryHandler(subCategoryService)
	brandHandler := handler.NewBrandHandler(brandService)
	productHandler := handler.NewProductHandler(productService)

	r := router.Setup(&router.Config{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		CategoryHandler:    categoryHandler,
		SubCategoryHandler: subCategoryHandler,
		BrandHandler:       brandHandler,
		ProductHandler:     productHandler,
		JWTManager:         jwtManager,
		UserRepo:           userRepo,
	})

	return &TestServer{
		Router:             r,
		MongoDB:            mongoDB,
		Redis:              redisContainer,
		UserRepo:           userRepo,
		CategoryRepo:       categoryRepo,
		SubCategoryRepo:    subCategoryRepo,
		BrandRepo:          brandRepo,
		ProductRepo:        productRepo,
		AuthService:        authService,
		UserService:        userService,
		CategoryService:    categoryService,
		SubCategoryService: subCategoryService,
		BrandService:       brandService,
		ProductService:     productService,
		JWTManager:         jwtManager,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
