package service

import (
	"context"
	"net/url"

	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandService handles business logic for brand operations.
type BrandService struct {
	repo     repository.BrandRepository
	registry *filter.Registry
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo repository.BrandRepository, registry *filter.Registry) *BrandService {
	return &BrandService{
		repo:     repo,
		registry: registry,
	}
}

// ListBrands returns a filtered, paginated window of brands.
func (s *BrandService) ListBrands(ctx context.Context, query url.Values) (*models.Page[models.Brand], error) {
	filterFn, err := s.registry.Get(filter.EntityBrands)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filterFn(query), models.ParsePageRequest(query))
}

// GetBrand retrieves a brand by ID.
func (s *BrandService) GetBrand(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateBrand creates a new brand.
func (s *BrandService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	brand := &models.Brand{
		Name:  req.Name,
		Image: req.Image,
	}
	if err := s.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// UpdateBrand updates a brand.
func (s *BrandService) UpdateBrand(ctx context.Context, id primitive.ObjectID, req *models.UpdateBrandRequest) (*models.Brand, error) {
	return s.repo.Update(ctx, id, req)
}

// DeleteBrand removes a brand.
func (s *BrandService) DeleteBrand(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
