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

// ProductService handles business logic for product operations. Create and
// update verify that referenced categories, sub-categories, and brands exist.
type ProductService struct {
	repo            repository.ProductRepository
	categoryRepo    repository.CategoryRepository
	subCategoryRepo repository.SubCategoryRepository
	brandRepo       repository.BrandRepository
	registry        *filter.Registry
}

// NewProductService creates a new ProductService.
func NewProductService(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	subCategoryRepo repository.SubCategoryRepository,
	brandRepo repository.BrandRepository,
	registry *filter.Registry,
) *ProductService {
	return &ProductService{
		repo:            repo,
		categoryRepo:    categoryRepo,
		subCategoryRepo: subCategoryRepo,
		brandRepo:       brandRepo,
		registry:        registry,
	}
}

// ListProducts returns a filtered, paginated window of products with
// category, brand, and sub-category names populated.
func (s *ProductService) ListProducts(ctx context.Context, query url.Values) (*models.Page[models.Product], error) {
	filterFn, err := s.registry.Get(filter.EntityProducts)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filterFn(query), models.ParsePageRequest(query))
}

// GetProduct retrieves a product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if req.PriceAfterDiscount > 0 && req.PriceAfterDiscount >= req.Price {
		return nil, apperrors.ErrInvalidDiscountPrice
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	brandID, err := s.resolveBrand(ctx, req.Brand)
	if err != nil {
		return nil, err
	}
	subCategoryIDs, err := s.resolveSubCategories(ctx, req.SubCategories)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:              req.Title,
		Description:        req.Description,
		Price:              req.Price,
		PriceAfterDiscount: req.PriceAfterDiscount,
		Colors:             req.Colors,
		Sizes:              req.Sizes,
		Images:             req.Images,
		Quantity:           req.Quantity,
		Sold:               req.Sold,
		CategoryID:         categoryID,
		SubCategoryIDs:     subCategoryIDs,
		BrandID:            brandID,
		RatingsAverage:     req.RatingsAverage,
		RatingsQuantity:    req.RatingsQuantity,
		IsActive:           true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Re-read so references come back populated.
	return s.repo.FindByID(ctx, product.ID)
}

// UpdateProduct updates a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error) {
	if req.PriceAfterDiscount != nil {
		price := req.Price
		if price == nil {
			existing, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return nil, err
			}
			price = &existing.Price
		}
		if *req.PriceAfterDiscount > 0 && *req.PriceAfterDiscount >= *price {
			return nil, apperrors.ErrInvalidDiscountPrice
		}
	}

	if req.Category != nil {
		if _, err := s.resolveCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
	}
	if req.Brand != nil {
		if _, err := s.resolveBrand(ctx, *req.Brand); err != nil {
			return nil, err
		}
	}
	if req.SubCategories != nil {
		if _, err := s.resolveSubCategories(ctx, req.SubCategories); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, req)
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) resolveCategory(ctx context.Context, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrCategoryNotFound
	}
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *ProductService) resolveBrand(ctx context.Context, hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, apperrors.ErrBrandNotFound
	}
	if _, err := s.brandRepo.FindByID(ctx, id); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *ProductService) resolveSubCategories(ctx context.Context, hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperrors.ErrSubCategoryNotFound
		}
		if _, err := s.subCategoryRepo.FindByID(ctx, id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
