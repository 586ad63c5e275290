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

// BrandRepository defines the interface for brand data operations
type BrandRepository interface {
	Create(ctx context.Context, brand *models.Brand) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Brand], error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBrandRequest) (*models.Brand, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type brandRepository struct {
	collection *mongo.Collection
}

// NewBrandRepository creates a new BrandRepository
func NewBrandRepository(db *mongo.Database) BrandRepository {
	return &brandRepository{
		collection: db.Collection("brands"),
	}
}

// Create inserts a new brand, deriving its slug from the name.
func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	var existing models.Brand
	if err := r.collection.FindOne(ctx, bson.M{"name": brand.Name}).Decode(&existing); err == nil {
		return apperrors.ErrBrandExists
	}

	now := time.Now()
	brand.Slug = slug.Make(brand.Name)
	brand.CreatedAt = now
	brand.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, brand)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrBrandExists
		}
		return err
	}

	brand.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a brand by its ID
func (r *brandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	var brand models.Brand

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBrandNotFound
		}
		return nil, err
	}

	return &brand, nil
}

// List returns a filtered, paginated window of brands.
func (r *brandRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Brand], error) {
	return Paginate[models.Brand](ctx, r.collection, req, QueryOptions{Result: result})
}

// Update applies the set fields, re-deriving the slug when the name changes.
func (r *brandRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBrandRequest) (*models.Brand, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = slug.Make(*update.Name)
	}
	if update.Image != nil {
		updateDoc["image"] = *update.Image
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBrandNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrBrandExists
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a brand from the database
func (r *brandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrBrandNotFound
	}

	return nil
}
