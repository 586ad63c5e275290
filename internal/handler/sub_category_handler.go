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

// SubCategoryHandler handles HTTP requests for sub-category operations. The
// list and create routes also mount nested under a category.
type SubCategoryHandler struct {
	service service.SubCategoryServicer
}

// NewSubCategoryHandler creates a new SubCategoryHandler.
func NewSubCategoryHandler(service service.SubCategoryServicer) *SubCategoryHandler {
	return &SubCategoryHandler{service: service}
}

// List godoc
// @Summary      List sub-categories
// @Description  Filtered, paginated listing; scoped to the parent category on the nested route
// @Tags         sub-categories
// @Produce      json
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  response.Response{data=models.Page[models.SubCategory]}
// @Router       /sub-categories [get]
func (h *SubCategoryHandler) List(c *gin.Context) {
	query := c.Request.URL.Query()

	// Nested route: /categories/:categoryId/sub-categories
	if categoryID := c.Param("categoryId"); categoryID != "" {
		query.Set("category", categoryID)
	}

	page, err := h.service.ListSubCategories(c.Request.Context(), query)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, page)
}

// Get godoc
// @Summary      Get a sub-category by ID
// @Tags         sub-categories
// @Produce      json
// @Param        id   path      string  true  "Sub-category ID"
// @Success      200  {object}  response.Response{data=models.SubCategory}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /sub-categories/{id} [get]
func (h *SubCategoryHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	subCategory, err := h.service.GetSubCategory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrSubCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, subCategory)
}

// Create godoc
// @Summary      Create a sub-category
// @Description  On the nested route the parent category comes from the path
// @Tags         sub-categories
// @Accept       json
// @Produce      json
// @Param        request  body      models.CreateSubCategoryRequest  true  "Sub-category details"
// @Success      201      {object}  response.Response{data=models.SubCategory}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-categories [post]
func (h *SubCategoryHandler) Create(c *gin.Context) {
	var req models.CreateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	// Nested route wins over the body.
	if categoryID := c.Param("categoryId"); categoryID != "" {
		req.Category = categoryID
	}
	if req.Category == "" {
		response.BadRequest(c, "category is required")
		return
	}

	subCategory, err := h.service.CreateSubCategory(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCategoryNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrSubCategoryExists):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, subCategory)
}

// Update godoc
// @Summary      Update a sub-category
// @Tags         sub-categories
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Sub-category ID"
// @Param        request  body      models.UpdateSubCategoryRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.SubCategory}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-categories/{id} [put]
func (h *SubCategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	subCategory, err := h.service.UpdateSubCategory(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSubCategoryNotFound),
			errors.Is(err, apperrors.ErrCategoryNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrSubCategoryExists):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, subCategory)
}

// Delete godoc
// @Summary      Delete a sub-category
// @Tags         sub-categories
// @Produce      json
// @Param        id   path  string  true  "Sub-category ID"
// @Success      204  "No Content"
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /sub-categories/{id} [delete]
func (h *SubCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSubCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrSubCategoryNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
