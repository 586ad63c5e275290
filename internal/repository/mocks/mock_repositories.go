// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"ecommerce-api/internal/filter"
	"ecommerce-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc             func(ctx context.Context, user *models.User) error
	FindByIDFunc           func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*models.User, error)
	ListFunc               func(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.User], error)
	UpdateFunc             func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	DeleteFunc             func(ctx context.Context, id primitive.ObjectID) error
	SetRefreshTokenFunc    func(ctx context.Context, id primitive.ObjectID, token *string) error
	SetPasswordResetFunc   func(ctx context.Context, id primitive.ObjectID, hashedCode string, expiresAt time.Time) error
	ClearPasswordResetFunc func(ctx context.Context, id primitive.ObjectID) error
	UpdatePasswordFunc     func(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.User], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, result, req)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token *string) error {
	if m.SetRefreshTokenFunc != nil {
		return m.SetRefreshTokenFunc(ctx, id, token)
	}
	return nil
}

func (m *MockUserRepository) SetPasswordReset(ctx context.Context, id primitive.ObjectID, hashedCode string, expiresAt time.Time) error {
	if m.SetPasswordResetFunc != nil {
		return m.SetPasswordResetFunc(ctx, id, hashedCode, expiresAt)
	}
	return nil
}

func (m *MockUserRepository) ClearPasswordReset(ctx context.Context, id primitive.ObjectID) error {
	if m.ClearPasswordResetFunc != nil {
		return m.ClearPasswordResetFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	CreateFunc   func(ctx context.Context, category *models.Category) error
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	ListFunc     func(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Category], error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, update *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Category], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, result, req)
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateCategoryRequest) (*models.Category, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockSubCategoryRepository is a mock implementation of SubCategoryRepository.
type MockSubCategoryRepository struct {
	CreateFunc   func(ctx context.Context, subCategory *models.SubCategory) error
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
	ListFunc     func(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.SubCategory], error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, update *models.UpdateSubCategoryRequest) (*models.SubCategory, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockSubCategoryRepository) Create(ctx context.Context, subCategory *models.SubCategory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, subCategory)
	}
	return nil
}

func (m *MockSubCategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubCategoryRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.SubCategory], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, result, req)
	}
	return nil, nil
}

func (m *MockSubCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateSubCategoryRequest) (*models.SubCategory, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockSubCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBrandRepository is a mock implementation of BrandRepository.
type MockBrandRepository struct {
	CreateFunc   func(ctx context.Context, brand *models.Brand) error
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	ListFunc     func(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Brand], error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, update *models.UpdateBrandRequest) (*models.Brand, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, brand)
	}
	return nil
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBrandRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Brand], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, result, req)
	}
	return nil, nil
}

func (m *MockBrandRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateBrandRequest) (*models.Brand, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockBrandRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	CreateFunc   func(ctx context.Context, product *models.Product) error
	FindByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListFunc     func(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Product], error)
	UpdateFunc   func(ctx context.Context, id primitive.ObjectID, update *models.UpdateProductRequest) (*models.Product, error)
	DeleteFunc   func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	return nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepository) List(ctx context.Context, result filter.Result, req models.PageRequest) (*models.Page[models.Product], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, result, req)
	}
	return nil, nil
}

func (m *MockProductRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateProductRequest) (*models.Product, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockProductRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
