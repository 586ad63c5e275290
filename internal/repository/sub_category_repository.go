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

// SubCategoryRepository defines the interface for sub-category data operations
type SubCategoryRepository interface {
	Create(ctx context.Context, subCategory *models.SubCategory) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
	List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.SubCategory], error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateSubCategoryRequest) (*models.SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type subCategoryRepository struct {
	collection *mongo.Collection
}

// NewSubCategoryRepository creates a new SubCategoryRepository
func NewSubCategoryRepository(db *mongo.Database) SubCategoryRepository {
	return &subCategoryRepository{
		collection: db.Collection("subcategories"),
	}
}

// categoryLookup expands the parent category reference to its name.
var categoryLookup = []Lookup{
	{From: "categories", LocalField: "category", ForeignField: "_id", As: "categoryDoc", Single: true},
}

// Create inserts a new sub-category, deriving its slug from the name.
func (r *subCategoryRepository) Create(ctx context.Context, subCategory *models.SubCategory) error {
	var existing models.SubCategory
	if err := r.collection.FindOne(ctx, bson.M{"name": subCategory.Name}).Decode(&existing); err == nil {
		return apperrors.ErrSubCategoryExists
	}

	now := time.Now()
	subCategory.Slug = slug.Make(subCategory.Name)
	subCategory.CreatedAt = now
	subCategory.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, subCategory)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrSubCategoryExists
		}
		return err
	}

	subCategory.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a sub-category by its ID with the parent category expanded.
func (r *subCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	page, err := Paginate[models.SubCategory](ctx, r.collection,
		models.PageRequest{Page: 1, Limit: 1},
		QueryOptions{
			Result:  filter.Result{Filter: bson.M{"_id": id}},
			Lookups: categoryLookup,
		})
	if err != nil {
		return nil, err
	}
	if len(page.Results) == 0 {
		return nil, apperrors.ErrSubCategoryNotFound
	}
	return &page.Results[0], nil
}

// List returns a filtered, paginated window of sub-categories with parent
// categories expanded.
func (r *subCategoryRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.SubCategory], error) {
	return Paginate[models.SubCategory](ctx, r.collection, req, QueryOptions{
		Result:  result,
		Lookups: categoryLookup,
	})
}

// Update applies the set fields, re-deriving the slug when the name changes.
func (r *subCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateSubCategoryRequest) (*models.SubCategory, error) {
	updateDoc := bson.M{"updatedAt": time.Now()}

	if update.Name != nil {
		updateDoc["name"] = *update.Name
		updateDoc["slug"] = slug.Make(*update.Name)
	}
	if update.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*update.Category)
		if err != nil {
			return nil, apperrors.ErrCategoryNotFound
		}
		updateDoc["category"] = categoryID
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSubCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(result.Err()) {
			return nil, apperrors.ErrSubCategoryExists
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// Delete removes a sub-category from the database
func (r *subCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrSubCategoryNotFound
	}

	return nil
}
