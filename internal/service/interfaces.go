// Package service contains business logic for the application.
package service

import (
	"context"
	"net/url"

	"ecommerce-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	ForgetPassword(ctx context.Context, req *models.ForgetPasswordRequest) (*models.ForgetPasswordResponse, error)
	VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) error
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetMe(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateMe(ctx context.Context, userID primitive.ObjectID, req *models.UpdateMeRequest) (*models.User, error)
	ChangeMyPassword(ctx context.Context, userID primitive.ObjectID, req *models.ChangePasswordRequest) error

	GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context, query url.Values) (*models.Page[models.User], error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
	AdminChangePassword(ctx context.Context, id primitive.ObjectID, req *models.AdminChangePasswordRequest) error
}

// CategoryServicer defines the interface for category operations.
type CategoryServicer interface {
	ListCategories(ctx context.Context, query url.Values) (*models.Page[models.Category], error)
	GetCategory(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
}

// SubCategoryServicer defines the interface for sub-category operations.
type SubCategoryServicer interface {
	ListSubCategories(ctx context.Context, query url.Values) (*models.Page[models.SubCategory], error)
	GetSubCategory(ctx context.Context, id primitive.ObjectID) (*models.SubCategory, error)
	CreateSubCategory(ctx context.Context, req *models.CreateSubCategoryRequest) (*models.SubCategory, error)
	UpdateSubCategory(ctx context.Context, id primitive.ObjectID, req *models.UpdateSubCategoryRequest) (*models.SubCategory, error)
	DeleteSubCategory(ctx context.Context, id primitive.ObjectID) error
}

// BrandServicer defines the interface for brand operations.
type BrandServicer interface {
	ListBrands(ctx context.Context, query url.Values) (*models.Page[models.Brand], error)
	GetBrand(ctx context.Context, id primitive.ObjectID) (*models.Brand, error)
	CreateBrand(ctx context.Context, req *models.CreateBrandRequest) (*models.Brand, error)
	UpdateBrand(ctx context.Context, id primitive.ObjectID, req *models.UpdateBrandRequest) (*models.Brand, error)
	DeleteBrand(ctx context.Context, id primitive.ObjectID) error
}

// ProductServicer defines the interface for product operations.
type ProductServicer interface {
	ListProducts(ctx context.Context, query url.Values) (*models.Page[models.Product], error)
	GetProduct(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id primitive.ObjectID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer        = (*AuthService)(nil)
	_ UserServicer        = (*UserService)(nil)
	_ CategoryServicer    = (*CategoryService)(nil)
	_ SubCategoryServicer = (*SubCategoryService)(nil)
	_ BrandServicer       = (*BrandService)(nil)
	_ ProductServicer     = (*ProductService)(nil)
)
