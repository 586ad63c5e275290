package service

import (
	"context"
	"net/url"

	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryService handles business logic for category operations.
type CategoryService struct {
	repo     repository.CategoryRepository
	registry *filter.Registry
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repository.CategoryRepository, registry *filter.Registry) *CategoryService {
	return &CategoryService{
		repo:     repo,
		registry: registry,
	}
}

// ListCategories returns a filtered, paginated window of categories.
func (s *CategoryService) ListCategories(ctx context.Context, query url.Values) (*models.Page[models.Category], error) {
	filterFn, err := s.registry.Get(filter.EntityCategories)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filterFn(query), models.ParsePageRequest(query))
}

// GetCategory retrieves a category by ID.
func (s *CategoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCategory creates a new category.
func (s *CategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:  req.Name,
		Image: req.Image,
	}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory updates a category.
func (s *CategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	return s.repo.Update(ctx, id, req)
}

// DeleteCategory removes a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
