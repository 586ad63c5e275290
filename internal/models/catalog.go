package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a top-level catalog grouping.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Slug       string             `json:"slug" bson:"slug"`
	CategoryID primitive.ObjectID `json:"categoryId" bson:"category"`
	Category   *NamedRef          `json:"category,omitempty" bson:"categoryDoc,omitempty"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Brand is a product manufacturer.
type Brand struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// NamedRef is the expanded form of a populated reference: just the name of
// the referenced document.
type NamedRef struct {
	Name string `json:"name" bson:"name"`
}

// Product is a catalog item. The *ID fields hold the stored references; the
// optional expanded fields are populated by $lookup on read paths that
// request relation expansion.
type Product struct {
	ID                 primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title              string               `json:"title" bson:"title"`
	Slug               string               `json:"slug" bson:"slug"`
	Description        string               `json:"description" bson:"description"`
	Price              float64              `json:"price" bson:"price"`
	PriceAfterDiscount float64              `json:"priceAfterDiscount,omitempty" bson:"priceAfterDiscount,omitempty"`
	Colors             []string             `json:"colors" bson:"colors"`
	Sizes              []string             `json:"sizes,omitempty" bson:"sizes,omitempty"`
	Images             []string             `json:"images" bson:"images"`
	Quantity           int                  `json:"quantity" bson:"quantity"`
	Sold               int                  `json:"sold" bson:"sold"`
	CategoryID         primitive.ObjectID   `json:"categoryId" bson:"category"`
	SubCategoryIDs     []primitive.ObjectID `json:"subCategoryIds,omitempty" bson:"subCategories,omitempty"`
	BrandID            primitive.ObjectID   `json:"brandId" bson:"brand"`
	Category           *NamedRef            `json:"category,omitempty" bson:"categoryDoc,omitempty"`
	Brand              *NamedRef            `json:"brand,omitempty" bson:"brandDoc,omitempty"`
	SubCategories      []NamedRef           `json:"subCategories,omitempty" bson:"subCategoryDocs,omitempty"`
	RatingsAverage     float64              `json:"ratingsAverage" bson:"ratingsAverage"`
	RatingsQuantity    int                  `json:"ratingsQuantity" bson:"ratingsQuantity"`
	IsActive           bool                 `json:"isActive" bson:"isActive"`
	CreatedAt          time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=32"`
	Image string `json:"image" binding:"omitempty,url"`
}

// UpdateCategoryRequest updates a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=32"`
	Image *string `json:"image" binding:"omitempty,url"`
}

// CreateSubCategoryRequest creates a sub-category. Category may come from
// the nested route parameter instead of the body.
type CreateSubCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=32"`
	Category string `json:"category" binding:"omitempty,mongoid"`
}

// UpdateSubCategoryRequest updates a sub-category.
type UpdateSubCategoryRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=32"`
	Category *string `json:"category" binding:"omitempty,mongoid"`
}

// CreateBrandRequest creates a brand.
type CreateBrandRequest struct {
	Name  string `json:"name" binding:"required,min=3,max=32"`
	Image string `json:"image" binding:"omitempty,url"`
}

// UpdateBrandRequest updates a brand.
type UpdateBrandRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=3,max=32"`
	Image *string `json:"image" binding:"omitempty,url"`
}

// CreateProductRequest creates a product.
type CreateProductRequest struct {
	Title              string   `json:"title" binding:"required,min=3,max=100"`
	Description        string   `json:"description" binding:"required,min=20"`
	Price              float64  `json:"price" binding:"required,gte=0"`
	PriceAfterDiscount float64  `json:"priceAfterDiscount" binding:"omitempty,gte=0"`
	Colors             []string `json:"colors" binding:"omitempty"`
	Sizes              []string `json:"sizes" binding:"omitempty"`
	Images             []string `json:"images" binding:"omitempty,dive,url"`
	Quantity           int      `json:"quantity" binding:"required,gte=0"`
	Sold               int      `json:"sold" binding:"omitempty,gte=0"`
	Category           string   `json:"category" binding:"required,mongoid"`
	SubCategories      []string `json:"subCategories" binding:"omitempty,dive,mongoid"`
	Brand              string   `json:"brand" binding:"required,mongoid"`
	RatingsAverage     float64  `json:"ratingsAverage" binding:"omitempty,gte=0,lte=5"`
	RatingsQuantity    int      `json:"ratingsQuantity" binding:"omitempty,gte=0"`
	IsActive           *bool    `json:"isActive" binding:"omitempty"`
}

// UpdateProductRequest updates a product. Only set fields are applied; a new
// title re-derives the slug.
type UpdateProductRequest struct {
	Title              *string  `json:"title" binding:"omitempty,min=3,max=100"`
	Description        *string  `json:"description" binding:"omitempty,min=20"`
	Price              *float64 `json:"price" binding:"omitempty,gte=0"`
	PriceAfterDiscount *float64 `json:"priceAfterDiscount" binding:"omitempty,gte=0"`
	Colors             []string `json:"colors" binding:"omitempty"`
	Sizes              []string `json:"sizes" binding:"omitempty"`
	Images             []string `json:"images" binding:"omitempty,dive,url"`
	Quantity           *int     `json:"quantity" binding:"omitempty,gte=0"`
	Sold               *int     `json:"sold" binding:"omitempty,gte=0"`
	Category           *string  `json:"category" binding:"omitempty,mongoid"`
	SubCategories      []string `json:"subCategories" binding:"omitempty,dive,mongoid"`
	Brand              *string  `json:"brand" binding:"omitempty,mongoid"`
	RatingsAverage     *float64 `json:"ratingsAverage" binding:"omitempty,gte=0,lte=5"`
	RatingsQuantity    *int     `json:"ratingsQuantity" binding:"omitempty,gte=0"`
	IsActive           *bool    `json:"isActive" binding:"omitempty"`
}
