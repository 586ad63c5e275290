// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"net/url"

	"ecommerce-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc        func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc         func(ctx context.Context, userID primitive.ObjectID) error
	ForgetPasswordFunc func(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error)
	VerifyOTPFunc      func(ctx context.Context, req *models.VerifyOTPRequest) error
	ResetPasswordFunc  func(ctx context.Context, req *models.ResetPasswordRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func (m *MockAuthService) ForgetPassword(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error) {
	if m.ForgetPasswordFunc != nil {
		return m.ForgetPasswordFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetMeFunc               func(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateMeFunc            func(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error)
	ChangeMyPasswordFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error
	GetUserFunc             func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsersFunc           func(ctx context.Context, query url.Values) (*models.Page[models.User], error)
	CreateUserFunc          func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUserFunc          func(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc          func(ctx context.Context, id primitive.ObjectID) error
	AdminChangePasswordFunc func(ctx context.Context, id primitive.ObjectID, req *models.AdminChangePasswordRequest) error
}

func (m *MockUserService) GetMe(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error) {
	if m.UpdateMeFunc != nil {
		return m.UpdateMeFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockUserService) ChangeMyPassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error {
	if m.ChangeMyPasswordFunc != nil {
		return m.ChangeMyPasswordFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockUserService) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context, query url.Values) (*models.Page[models.User], error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

func (m *MockUserService) AdminChangePassword(ctx context.Context, id primitive.ObjectID, req *models.AdminChangePasswordRequest) error {
	if m.AdminChangePasswordFunc != nil {
		return m.AdminChangePasswordFunc(ctx, id, req)
	}
	return nil
}

// MockCategoryService is a mock implementation of CategoryServicer.
type MockCategoryService struct {
	ListCategoriesFunc func(ctx context.Context, query url.Values) (*models.Page[models.Category], error)
	GetCategoryFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	CreateCategoryFunc func(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategoryFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockCategoryService) ListCategories(ctx context.Context, query url.Values) (*models.Page[models.Category], error) {
	if m.ListCategoriesFunc != nil {
		return m.ListCategoriesFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	if m.GetCategoryFunc != nil {
		return m.GetCategoryFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if m.CreateCategoryFunc != nil {
		return m.CreateCategoryFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if m.UpdateCategoryFunc != nil {
		return m.UpdateCategoryFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteCategoryFunc != nil {
		return m.DeleteCategoryFunc(ctx, id)
	}
	return nil
}

// MockSubCategoryService is a mock implementation of SubCategoryServicer.
type MockSubCategoryService struct {
	ListSubCategoriesFunc func(ctx context.Context, query url.Values) (*models.Page[models.SubCategory], error)
	GetSubCategoryFunc    func(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
	CreateSubCategoryFunc func(ctx context.Context, req *models.CreateSubCategoryRequest) (*models.SubCategory, error)
	UpdateSubCategoryFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateSubCategoryRequest) (*models.SubCategory, error)
	DeleteSubCategoryFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockSubCategoryService) ListSubCategories(ctx context.Context, query url.Values) (*models.Page[models.SubCategory], error) {
	if m.ListSubCategoriesFunc != nil {
		return m.ListSubCategoriesFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockSubCategoryService) GetSubCategory(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error) {
	if m.GetSubCategoryFunc != nil {
		return m.GetSubCategoryFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockSubCategoryService) CreateSubCategory(ctx context.Context, req *models.CreateSubCategoryRequest) (*models.SubCategory, error) {
	if m.CreateSubCategoryFunc != nil {
		return m.CreateSubCategoryFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockSubCategoryService) UpdateSubCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateSubCategoryRequest) (*models.SubCategory, error) {
	if m.UpdateSubCategoryFunc != nil {
		return m.UpdateSubCategoryFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockSubCategoryService) DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteSubCategoryFunc != nil {
		return m.DeleteSubCategoryFunc(ctx, id)
	}
	return nil
}

// MockBrandService is a mock implementation of BrandServicer.
type MockBrandService struct {
	ListBrandsFunc  func(ctx context.Context, query url.Values) (*models.Page[models.Brand], error)
	GetBrandFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	CreateBrandFunc func(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error)
	UpdateBrandFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateBrandRequest) (*models.Brand, error)
	DeleteBrandFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockBrandService) ListBrands(ctx context.Context, query url.Values) (*models.Page[models.Brand], error) {
	if m.ListBrandsFunc != nil {
		return m.ListBrandsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockBrandService) GetBrand(ctx context.Context, id primitive.ObjectID) (*models.Brand, error) {
	if m.GetBrandFunc != nil {
		return m.GetBrandFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBrandService) CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error) {
	if m.CreateBrandFunc != nil {
		return m.CreateBrandFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockBrandService) UpdateBrand(ctx context.Context, id primitive.ObjectID, req *models.UpdateBrandRequest) (*models.Brand, error) {
	if m.UpdateBrandFunc != nil {
		return m.UpdateBrandFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockBrandService) DeleteBrand(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteBrandFunc != nil {
		return m.DeleteBrandFunc(ctx, id)
	}
	return nil
}

// MockProductService is a mock implementation of ProductServicer.
type MockProductService struct {
	ListProductsFunc  func(ctx context.Context, query url.Values) (*models.Page[models.Product], error)
	GetProductFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProductFunc func(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProductFunc func(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProductFunc func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockProductService) ListProducts(ctx context.Context, query url.Values) (*models.Page[models.Product], error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockProductService) GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockProductService) UpdateProduct(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockProductService) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, id)
	}
	return nil
}
