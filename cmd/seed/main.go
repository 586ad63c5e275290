package main

import (
	"context"
	"log"
	"time"

	"ecommerce-api/internal/config"
	"ecommerce-api/internal/database"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/auth"
	"ecommerce-api/pkg/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	// Load config
	cfg := config.Load()

	// Connect to MongoDB
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	if err := mongoDB.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	seedUsers(ctx, mongoDB.Database)
	categoryIDs := seedCategories(ctx, mongoDB.Database)
	subCategoryIDs := seedSubCategories(ctx, mongoDB.Database, categoryIDs)
	brandIDs := seedBrands(ctx, mongoDB.Database)
	seedProducts(ctx, mongoDB.Database, categoryIDs, subCategoryIDs, brandIDs)

	log.Println("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("users")

	// Clear existing users
	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear users: %v", err)
	}

	adminPassword, _ := auth.HashPassword("admin123")
	userPassword, _ := auth.HashPassword("password123")

	now := time.Now()

	users := []interface{}{
		models.User{
			Name:      "Admin",
			Slug:      "admin",
			Email:     "admin@example.com",
			Password:  adminPassword,
			Role:      models.RoleAdmin,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Name:      "Alice Johnson",
			Slug:      "alice-johnson",
			Email:     "alice@example.com",
			Password:  userPassword,
			Role:      models.RoleUser,
			Active:    true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seeded %d users", len(result.InsertedIDs))
}

func seedCategories(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("categories")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear categories: %v", err)
	}

	now := time.Now()
	names := []string{"Electronics", "Clothing", "Home and Garden"}

	docs := make([]interface{}, len(names))
	for i, name := range names {
		docs[i] = models.Category{
			Name:      name,
			Slug:      slug.Make(name),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	log.Printf("Seeded %d categories", len(result.InsertedIDs))
	return toIDs(result)
}

func seedSubCategories(ctx context.Context, db *mongo.Database, categoryIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("subcategories")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear sub-categories: %v", err)
	}

	now := time.Now()

	docs := []interface{}{
		models.SubCategory{
			Name:       "Smartphones",
			Slug:       "smartphones",
			CategoryID: categoryIDs[0],
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.SubCategory{
			Name:       "Laptops",
			Slug:       "laptops",
			CategoryID: categoryIDs[0],
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.SubCategory{
			Name:       "Menswear",
			Slug:       "menswear",
			CategoryID: categoryIDs[1],
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed sub-categories: %v", err)
	}

	log.Printf("Seeded %d sub-categories", len(result.InsertedIDs))
	return toIDs(result)
}

func seedBrands(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("brands")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear brands: %v", err)
	}

	now := time.Now()
	names := []string{"Acme", "Globex", "Initech"}

	docs := make([]interface{}, len(names))
	for i, name := range names {
		docs[i] = models.Brand{
			Name:      name,
			Slug:      slug.Make(name),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	result, err := collection.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to seed brands: %v", err)
	}

	log.Printf("Seeded %d brands", len(result.InsertedIDs))
	return toIDs(result)
}

func seedProducts(ctx context.Context, db *mongo.Database, categoryIDs, subCategoryIDs, brandIDs []primitive.ObjectID) {
	collection := db.Collection("products")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear products: %v", err)
	}

	now := time.Now()

	products := []interface{}{
		models.Product{
			Title:          "Acme Phone X1",
			Slug:           "acme-phone-x1",
			Description:    "A 6.1 inch smartphone with a two-day battery and a great camera.",
			Price:          699,
			Colors:         []string{"black", "silver"},
			Images:         []string{},
			Quantity:       120,
			Sold:           34,
			CategoryID:     categoryIDs[0],
			SubCategoryIDs: []primitive.ObjectID{subCategoryIDs[0]},
			BrandID:        brandIDs[0],
			RatingsAverage: 4.4,
			IsActive:       true,
			CreatedAt:      now.Add(-48 * time.Hour),
			UpdatedAt:      now.Add(-48 * time.Hour),
		},
		models.Product{
			Title:              "Globex UltraBook 14",
			Slug:               "globex-ultrabook-14",
			Description:        "Thin and light 14 inch laptop with 16GB RAM and 512GB storage.",
			Price:              1299,
			PriceAfterDiscount: 1149,
			Colors:             []string{"gray"},
			Images:             []string{},
			Quantity:           45,
			Sold:               12,
			CategoryID:         categoryIDs[0],
			SubCategoryIDs:     []primitive.ObjectID{subCategoryIDs[1]},
			BrandID:            brandIDs[1],
			RatingsAverage:     4.7,
			IsActive:           true,
			CreatedAt:          now.Add(-24 * time.Hour),
			UpdatedAt:          now.Add(-24 * time.Hour),
		},
		models.Product{
			Title:          "Initech Oxford Shirt",
			Slug:           "initech-oxford-shirt",
			Description:    "Classic fit cotton oxford shirt, machine washable and durable.",
			Price:          59,
			Colors:         []string{"white", "blue"},
			Sizes:          []string{"S", "M", "L", "XL"},
			Images:         []string{},
			Quantity:       300,
			Sold:           88,
			CategoryID:     categoryIDs[1],
			SubCategoryIDs: []primitive.ObjectID{subCategoryIDs[2]},
			BrandID:        brandIDs[2],
			RatingsAverage: 4.1,
			IsActive:       true,
			CreatedAt:      now.Add(-6 * time.Hour),
			UpdatedAt:      now.Add(-6 * time.Hour),
		},
	}

	result, err := collection.InsertMany(ctx, products)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	log.Printf("Seeded %d products", len(result.InsertedIDs))
}

func toIDs(result *mongo.InsertManyResult) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	return ids
}
