package handler

import (
	"errors"
	"net/http"

	apperrors "ecommerce-api/internal/errors"
	"ecommerce-api/internal/models"
	"ecommerce-api/internal/service"
	"ecommerce-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for product operations.
type ProductHandler struct {
	service service.ProductServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service service.ProductServicer) *ProductHandler {
	return &ProductHandler{service: service}
}

// List godoc
// @Summary      List products
// @Description  Filtered, paginated product listing with populated references
// @Tags         products
// @Produce      json
// @Param        page         query     int     false  "Page number"
// @Param        limit        query     int     false  "Page size"
// @Param        search       query     string  false  "Search title and description"
// @Param        category     query     string  false  "Filter by category ID"
// @Param        brand        query     string  false  "Filter by brand ID"
// @Param        price_gte    query     number  false  "Minimum price"
// @Param        price_lte    query     number  false  "Maximum price"
// @Param        price_range  query     string  false  "Price shorthand, e.g. 100-500"
// @Param        sort         query     string  false  "Sort fields, prefix with - for descending"
// @Param        fields       query     string  false  "Projection fields"
// @Success      200          {object}  response.Response{data=models.Page[models.Product]}
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	page, err := h.service.ListProducts(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, page)
}

// Get godoc
// @Summary      Get a product by ID
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  response.Response{data=models.Product}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, product)
}

// Create godoc
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateProductRequest  true  "Product details"
// @Success      201      {object}  response.Response{data=models.Product}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		writeProductError(c, err)
		return
	}

	response.Created(c, product)
}

// Update godoc
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string                       true  "Product ID"
// @Param        request  body      models.UpdateProductRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Product}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	product, err := h.service.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		writeProductError(c, err)
		return
	}

	response.Success(c, product)
}

// Delete godoc
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "Product ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrProductNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}

// writeProductError maps product write failures to HTTP responses.
func writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProductNotFound),
		errors.Is(err, apperrors.ErrCategoryNotFound),
		errors.Is(err, apperrors.ErrSubCategoryNotFound),
		errors.Is(err, apperrors.ErrBrandNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, apperrors.ErrProductExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidDiscountPrice):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
