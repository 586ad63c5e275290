package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-api/internal/cache"
	"ecommerce-api/internal/config"
	"ecommerce-api/internal/database"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/handler"
	"ecommerce-api/internal/mailer"
	"ecommerce-api/internal/repository"
	"ecommerce-api/internal/router"
	"ecommerce-api/internal/service"
	"ecommerce-api/internal/validator"
	"ecommerce-api/pkg/auth"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongoDB.EnsureIndexes(indexCtx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	indexCancel()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// JWT Manager
	jwtManager := auth.NewJWTManager(
		cfg.AccessTokenSecret,
		cfg.RefreshTokenSecret,
		cfg.AccessTokenExpiry,
		cfg.RefreshTokenExpiry,
	)

	// Mailer (optional; the forget-password flow falls back to returning the
	// code in the response when disabled)
	var sender mailer.Sender
	if cfg.MailerEnabled {
		sesSender, err := mailer.NewSESSender(context.Background(), cfg.AWSRegion, cfg.MailerFrom)
		if err != nil {
			log.Fatalf("Failed to initialize mailer: %v", err)
		}
		sender = sesSender
	} else {
		log.Println("Mailer disabled, reset codes will be returned in responses")
	}

	// Filter registry
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
		Mailer:     sender,
		OTPExpiry:  cfg.OTPExpiry,
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

	// Router
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

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
