package repository

import (
	"context"
	"errors"
	"time"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/pkg/slug"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Product], error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type productRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *mongo.Database) ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
	}
}

// productLookups expand the category, brand, and sub-category references to
// their names on read paths.
var productLookups = []Lookup{
	{From: "categories", LocalField: "category", ForeignField: "_id", As: "categoryDoc", Single: true},
	{From: "brands", LocalField: "brand", ForeignField: "_id", As: "brandDoc", Single: true},
	{From: "subcategories", LocalField: "subCategories", ForeignField: "_id", As: "subCategoryDocs"},
}

// Create inserts a new product, deriving its slug from the title.
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	var existing models.Product
	if err := r.collection.FindOne(ctx, bson.M{"title": product.Title}).Decode(&existing); err == nil {
		return apperrors.ErrProductExists
	}

	now := time.Now()
	product.Slug = slug.Make(product.Title)
	product.CreatedAt = now
	product.UpdatedAt = now
	if product.Colors == nil {
		product.Colors = []string{}
	}
	if product.Images == nil {
		product.Images = []string{}
	}

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrProductExists
		}
		return err
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a product by its ID with references expanded.
func (r *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	page, err := Paginate[models.Product](ctx, r.collection,
		models.PageRequest{Page: 1, Limit: 1},
		QueryOptions{
			Result:  filter.Result{Filter: bson.M{"_id": id}},
			Lookups: productLookups,
		})
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, apperrors.ErrProductNotFound
	}
	return &page.Results[0], nil
}

// List returns a filtered, paginated window of products with references
// expanded.
func (r *productRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Product], error) {
	return Paginate[models.Product](ctx, r.collection, req, QueryOptions{
		Result:  result,
		Lookups: productLookups,
	})
}

// Update applies the set fields, re-deriving the slug when the title changes.
func (r *productRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateProductRequest) (*models.Product, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
		updateDoc["slug"] = slug.Make(*update.Title)
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Price != nil {
		updateDoc["price"] = *update.Price
	}
	if update.PriceAfterDiscount != nil {
		updateDoc["priceAfterDiscount"] = *update.PriceAfterDiscount
	}
	if update.Colors != nil {
		updateDoc["colors"] = update.Colors
	}
	if update.Sizes != nil {
		updateDoc["sizes"] = update.Sizes
	}
	if update.Images != nil {
		updateDoc["images"] = update.Images
	}
	if update.Quantity != nil {
		updateDoc["quantity"] = *update.Quantity
	}
	if update.Sold != nil {
		updateDoc["sold"] = *update.Sold
	}
	if update.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*update.Category)
		if err != nil {
			return nil, apperrors.ErrCategoryNotFound
		}
		updateDoc["category"] = categoryID
	}
	if update.SubCategories != nil {
		ids, err := toObjectIDs(update.SubCategories)
		if err != nil {
			return nil, apperrors.ErrSubCategoryNotFound
		}
		updateDoc["subCategories"] = ids
	}
	if update.Brand != nil {
		brandID, err := primitive.ObjectIDFromHex(*update.Brand)
		if err != nil {
			return nil, apperrors.ErrBrandNotFound
		}
		updateDoc["brand"] = brandID
	}
	if update.RatingsAverage != nil {
		updateDoc["ratingsAverage"] = *update.RatingsAverage
	}
	if update.RatingsQuantity != nil {
		updateDoc["ratingsQuantity"] = *update.RatingsQuantity
	}
	if update.IsActive != nil {
		updateDoc["isActive"] = *update.IsActive
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProductNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrProductExists
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a product from the database
func (r *productRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrProductNotFound
	}

	return nil
}

func toObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(hexes))
	for i, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
