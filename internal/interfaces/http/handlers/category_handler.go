package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/volatiletech/null/v8"
	"mandi-bazaar.backend/internal/domain/entities"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
	"mandi-bazaar.backend/internal/domain/repositories"
	"mandi-bazaar.backend/internal/interfaces/http/response"
)

// CategoryHandler handles product category endpoints
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categoryRepo: categoryRepo}
}

// CreateCategory creates a new product category
// POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input entities.CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if input.Name == "" {
		response.Error(c, domainerrors.BadRequest("Category name is required"))
		return
	}

	category := &entities.Category{
		Name:        input.Name,
		Description: null.NewString(input.Description, input.Description != ""),
	}
	if err := h.categoryRepo.Create(c.Request.Context(), category); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			response.Error(c, domainerrors.Conflict("Category already exists"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// ListCategories lists all product categories
// GET /api/v1/categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}
