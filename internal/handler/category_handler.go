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

// CategoryHandler handles HTTP requests for category operations.
type CategoryHandler struct {
	service service.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service service.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List godoc
// @Summary      List categories
// @Description  Filtered, paginated category listing
// @Tags         categories
// @Produce      json
// @Param        page     query     int     false  "Page number"
// @Param        limit    query     int     false  "Page size"
// @Param        search   query     string  false  "Search by name"
// @Param        sort     query     string  false  "Sort fields, prefix with - for descending"
// @Success      200      {object}  response.Response{data=models.Page[models.Category]}
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	page, err := h.service.ListCategories(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, page)
}

// Get godoc
// @Summary      Get a category by ID
// @Tags         categories
// @Produce      json
// @Param        categoryId   path      string  true  "Category ID"
// @Success      200  {object}  response.Response{data=models.Category}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /categories/{categoryId} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, category)
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateCategoryRequest  true  "Category details"
// @Success      201      {object}  response.Response{data=models.Category}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, category)
}

// Update godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        categoryId  path  string  true  "Category ID"
// @Param        request  body      models.UpdateCategoryRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Category}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /categories/{categoryId} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCategoryNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrCategoryExists):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, category)
}

// Delete godoc
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        categoryId   path  string  true  "Category ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "categoryId")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
