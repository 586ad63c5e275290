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

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Category], error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type categoryRepository struct {
	collection *mongo.Collection
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{
		collection: db.Collection("categories"),
	}
}

// Create inserts a new category, deriving its slug from the name.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	var existing models.Category
	if err := r.collection.FindOne(ctx, bson.M{"name": category.Name}).Decode(&existing); err == nil {
		return apperrors.ErrCategoryExists
	}

	now := time.Now()
	category.Slug = slug.Make(category.Name)
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrCategoryExists
		}
		return err
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a category by its ID
func (r *categoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	return &category, nil
}

// List returns a filtered, paginated window of categories.
func (r *categoryRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Category], error) {
	return Paginate[models.Category](ctx, r.collection, req, QueryOptions{Result: result})
}

// Update applies the set fields, re-deriving the slug when the name changes.
func (r *categoryRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateCategoryRequest) (*models.Category, error) {
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
			return nil, apperrors.ErrCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a category from the database
func (r *categoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrCategoryNotFound
	}

	return nil
}
