// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	"ecommerce-api/internal/handler"
	"ecommerce-api/internal/middleware"
	"ecommerce-api/internal/repository"
	"ecommerce-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler        *handler.AuthHandler
	UserHandler        *handler.UserHandler
	CategoryHandler    *handler.CategoryHandler
	SubCategoryHandler *handler.SubCategoryHandler
	BrandHandler       *handler.BrandHandler
	ProductHandler     *handler.ProductHandler
	JWTManager         auth.TokenManager
	UserRepo           repository.UserRepository
}

// Setup creates and configures the Gin router. Catalog reads are public;
// catalog writes and user administration require an admin account.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authn := middleware.Auth(cfg.JWTManager, cfg.UserRepo)
	admin := middleware.RequireAdmin()

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh-token", cfg.AuthHandler.Refresh)
			authRoutes.POST("/forget-password", cfg.AuthHandler.ForgetPassword)
			authRoutes.POST("/verify-otp", cfg.AuthHandler.VerifyOTP)
			authRoutes.POST("/reset-password", cfg.AuthHandler.ResetPassword)
		}

		// Auth routes (protected)
		authProtected := v1.Group("/auth")
		authProtected.Use(authn)
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Self-service profile routes (protected)
		me := v1.Group("/users/me")
		me.Use(authn)
		{
			me.GET("", cfg.UserHandler.GetMe)
			me.PUT("", cfg.UserHandler.UpdateMe)
			me.PUT("/change-password", cfg.UserHandler.ChangeMyPassword)
		}

		// User administration routes (admin only)
		users := v1.Group("/users")
		users.Use(authn, admin)
		{
			users.GET("", cfg.UserHandler.List)
			users.POST("", cfg.UserHandler.Create)
			users.GET("/:id", cfg.UserHandler.Get)
			users.PUT("/:id", cfg.UserHandler.Update)
			users.DELETE("/:id", cfg.UserHandler.Delete)
			users.PUT("/:id/change-password", cfg.UserHandler.ChangePassword)
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", cfg.CategoryHandler.List)
			categories.GET("/:categoryId", cfg.CategoryHandler.Get)
			categories.POST("", authn, admin, cfg.CategoryHandler.Create)
			categories.PUT("/:categoryId", authn, admin, cfg.CategoryHandler.Update)
			categories.DELETE("/:categoryId", authn, admin, cfg.CategoryHandler.Delete)
		}

		// Sub-categories nested under a category
		nested := v1.Group("/categories/:categoryId/sub-categories")
		{
			nested.GET("", cfg.SubCategoryHandler.List)
			nested.POST("", authn, admin, cfg.SubCategoryHandler.Create)
		}

		// Sub-category routes
		subCategories := v1.Group("/sub-categories")
		{
			subCategories.GET("", cfg.SubCategoryHandler.List)
			subCategories.GET("/:id", cfg.SubCategoryHandler.Get)
			subCategories.POST("", authn, admin, cfg.SubCategoryHandler.Create)
			subCategories.PUT("/:id", authn, admin, cfg.SubCategoryHandler.Update)
			subCategories.DELETE("/:id", authn, admin, cfg.SubCategoryHandler.Delete)
		}

		// Brand routes
		brands := v1.Group("/brands")
		{
			brands.GET("", cfg.BrandHandler.List)
			brands.GET("/:id", cfg.BrandHandler.Get)
			brands.POST("", authn, admin, cfg.BrandHandler.Create)
			brands.PUT("/:id", authn, admin, cfg.BrandHandler.Update)
			brands.DELETE("/:id", authn, admin, cfg.BrandHandler.Delete)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", cfg.ProductHandler.List)
			products.GET("/:id", cfg.ProductHandler.Get)
			products.POST("", authn, admin, cfg.ProductHandler.Create)
			products.PUT("/:id", authn, admin, cfg.ProductHandler.Update)
			products.DELETE("/:id", authn, admin, cfg.ProductHandler.Delete)
		}
	}

	return r
}
