package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MaxImageUploadSize caps item image uploads.
const MaxImageUploadSize = 10 * 1024 * 1024 // 10MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ItemController handles HTTP requests for menu item operations.
type ItemController struct {
	itemService services.ItemService
	menuCache   *MenuCache
	uploadsDir  string
	appURL      string
}

// NewItemController creates a new ItemController. appURL, when set, overrides
// the request host when building uploaded image URLs.
func NewItemController(itemService services.ItemService, menuCache *MenuCache, uploadsDir, appURL string) *ItemController {
	return &ItemController{
		itemService: itemService,
		menuCache:   menuCache,
		uploadsDir:  uploadsDir,
		appURL:      appURL,
	}
}

// ListItems handles GET /api/items with optional categoryId, search and
// active=true query filters. Listings are served from the menu cache when
// possible.
func (ic *ItemController) ListItems(ctx *gin.Context) {
	categoryID := ctx.Query("categoryId")
	search := ctx.Query("search")
	activeOnly := ctx.Query("active") == "true"

	if items, hit := ic.menuCache.GetItemList(ctx.Request.Context(), categoryID, search, activeOnly); hit {
		ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: items})
		return
	}

	items, svcErr := ic.itemService.ListItems(ctx.Request.Context(), categoryID, search, activeOnly)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ic.menuCache.SetItemListAsync(categoryID, search, activeOnly, items)
	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: items})
}

// GetItem handles GET /api/items/:id.
func (ic *ItemController) GetItem(ctx *gin.Context) {
	item, svcErr := ic.itemService.GetItem(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: item})
}

// CreateItem handles POST /api/items (admin only).
func (ic *ItemController) CreateItem(ctx *gin.Context) {
	var req models.CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	item, svcErr := ic.itemService.CreateItem(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ic.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    item,
		Message: "Item created successfully",
	})
}

// UpdateItem handles PUT /api/items/:id (admin only).
func (ic *ItemController) UpdateItem(ctx *gin.Context) {
	var req models.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	item, svcErr := ic.itemService.UpdateItem(ctx.Request.Context(), ctx.Param("id"), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ic.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    item,
		Message: "Item updated successfully",
	})
}

// DeleteItem handles DELETE /api/items/:id (admin only).
func (ic *ItemController) DeleteItem(ctx *gin.Context) {
	svcErr := ic.itemService.DeleteItem(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ic.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Message: "Item deleted successfully",
	})
}

// UploadItemImage handles POST /api/items/:id/image (admin only). The file is
// stored on local disk under the uploads dir and served statically.
func (ic *ItemController) UploadItemImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Image file is required"})
		return
	}

	if file.Size > MaxImageUploadSize {
		ctx.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Image exceeds maximum size"})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		ctx.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Unsupported image type"})
		return
	}

	if err := os.MkdirAll(ic.uploadsDir, 0o755); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Error: "Internal server error"})
		return
	}

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	if err := ctx.SaveUploadedFile(file, filepath.Join(ic.uploadsDir, filename)); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Error: "Internal server error"})
		return
	}

	item, svcErr := ic.itemService.SetItemImage(ctx.Request.Context(), ctx.Param("id"), ic.buildUploadURL(ctx, filename))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ic.menuCache.Invalidate(ctx.Request.Context())
	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    item,
		Message: "Image uploaded successfully",
	})
}

// buildUploadURL produces the absolute URL of an uploaded file, preferring the
// configured APP_URL over the request host.
func (ic *ItemController) buildUploadURL(ctx *gin.Context, filename string) string {
	base := strings.TrimRight(ic.appURL, "/")
	if base == "" {
		scheme := "http"
		if ctx.Request.TLS != nil {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, ctx.Request.Host)
	}
	return base + "/uploads/" + filename
}
