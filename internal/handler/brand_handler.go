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

// BrandHandler handles HTTP requests for brand operations.
type BrandHandler struct {
	service service.BrandServicer
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service service.BrandServicer) *BrandHandler {
	return &BrandHandler{service: service}
}

// List godoc
// @Summary      List brands
// @Description  Filtered, paginated brand listing
// @Tags         brands
// @Produce      json
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Page size"
// @Param        search   query     string  false  "Search by name"
// @Success      200      {object}  response.Response{data=models.Page[models.Brand]}
// @Router       /brands [get]
func (h *BrandHandler) List(c *gin.Context) {
	page, err := h.service.ListBrands(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, page)
}

// Get godoc
// @Summary      Get a brand by ID
// @Tags         brands
// @Produce      json
// @Param        id   path      string  true  "Brand ID"
// @Success      200  {object}  response.Response{data=models.Brand}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /brands/{id} [get]
func (h *BrandHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	brand, err := h.service.GetBrand(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrandNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, brand)
}

// Create godoc
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateBrandRequest  true  "Brand details"
// @Success      201      {object}  response.Response{data=models.Brand}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /brands [post]
func (h *BrandHandler) Create(c *gin.Context) {
	var req models.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	brand, err := h.service.CreateBrand(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrBrandExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, brand)
}

// Update godoc
// @Summary      Update a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Brand ID"
// @Param        request  body      models.UpdateBrandRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Brand}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /brands/{id} [put]
func (h *BrandHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	brand, err := h.service.UpdateBrand(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrBrandNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrBrandExists):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, brand)
}

// Delete godoc
// @Summary      Delete a brand
// @Tags         brands
// @Produce      json
// @Param        id   path  string  true  "Brand ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /brands/{id} [delete]
func (h *BrandHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBrand(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrBrandNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
