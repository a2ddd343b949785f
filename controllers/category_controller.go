package controllers

import (
	"net/http"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
)

// CategoryController handles HTTP requests for category operations.
type CategoryController struct {
	categoryService services.CategoryService
	menuCache       *MenuCache
}

// NewCategoryController creates a new CategoryController.
func NewCategoryController(categoryService services.CategoryService, menuCache *MenuCache) *CategoryController {
	return &CategoryController{categoryService: categoryService, menuCache: menuCache}
}

// ListCategories handles GET /api/categories.
func (cc *CategoryController) ListCategories(ctx *gin.Context) {
	categories, svcErr := cc.categoryService.ListCategories(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: categories})
}

// GetCategory handles GET /api/categories/:id.
func (cc *CategoryController) GetCategory(ctx *gin.Context) {
	category, svcErr := cc.categoryService.GetCategory(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: category})
}

// CreateCategory handles POST /api/categories (admin only).
func (cc *CategoryController) CreateCategory(ctx *gin.Context) {
	var req models.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	category, svcErr := cc.categoryService.CreateCategory(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	cc.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    category,
		Message: "Category created successfully",
	})
}

// UpdateCategory handles PUT /api/categories/:id (admin only).
func (cc *CategoryController) UpdateCategory(ctx *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	category, svcErr := cc.categoryService.UpdateCategory(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	cc.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    category,
		Message: "Category updated successfully",
	})
}

// DeleteCategory handles DELETE /api/categories/:id (admin only).
func (cc *CategoryController) DeleteCategory(ctx *gin.Context) {
	svcErr := cc.categoryService.DeleteCategory(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	cc.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Category deleted successfully",
	})
}
