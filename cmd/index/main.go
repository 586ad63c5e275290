// Standalone index migration. The server also ensures indexes on startup;
// this entry point exists for running migrations against a database without
// booting the API.
package main

import (
	"context"
	"log"
	"time"

	"ecommerce-api/internal/config"
	"ecommerce-api/internal/database"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	log.Println("Migration completed successfully!")
}
