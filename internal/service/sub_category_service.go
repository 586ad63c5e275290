package service

import (
	"context"
	"net/url"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategoryService handles business logic for sub-category operations.
type SubCategoryService struct {
	repo         repository.SubCategoryRepository
	categoryRepo repository.CategoryRepository
	registry     *filter.Registry
}

// NewSubCategoryService creates a new SubCategoryService.
func NewSubCategoryService(repo repository.SubCategoryRepository, categoryRepo repository.CategoryRepository, registry *filter.Registry) *SubCategoryService {
	return &SubCategoryService{
		repo:         repo,
		categoryRepo: categoryRepo,
		registry:     registry,
	}
}

// ListSubCategories returns a filtered, paginated window of sub-categories.
// Nested routes scope the listing by setting "category" in the query.
func (s *SubCategoryService) ListSubCategories(ctx context.Context, query url.Values) (*models.Page[models.SubCategory], error) {
	filterFn, err := s.registry.Get(filter.EntitySubCategories)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filterFn(query), models.ParsePageRequest(query))
}

// GetSubCategory retrieves a sub-category by ID.
func (s *SubCategoryService) GetSubCategory(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateSubCategory creates a new sub-category. The parent category must
// exist; nested routes pre-fill req.Category from the path.
func (s *SubCategoryService) CreateSubCategory(ctx context.Context, req *models.CreateSubCategoryRequest) (*models.SubCategory, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, apperrors.ErrCategoryNotFound
	}

	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}

	subCategory := &models.SubCategory{
		Name:       req.Name,
		CategoryID: categoryID,
	}
	if err := s.repo.Create(ctx, subCategory); err != nil {
		return nil, err
	}
	return subCategory, nil
}

// UpdateSubCategory updates a sub-category. A new parent category must exist.
func (s *SubCategoryService) UpdateSubCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateSubCategoryRequest) (*models.SubCategory, error) {
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return nil, apperrors.ErrCategoryNotFound
		}
		if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, id, req)
}

// DeleteSubCategory removes a sub-category.
func (s *SubCategoryService) DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
