package services

import (
	"context"
	"errors"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemService defines the interface for menu item business logic.
type ItemService interface {
	ListItems(ctx context.Context, categoryID, search string, activeOnly bool) ([]models.Item, *ServiceError)
	GetItem(ctx context.Context, id string) (*models.Item, *ServiceError)
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, *ServiceError)
	UpdateItem(ctx context.Context, id string, req *models.UpdateItemRequest) (*models.Item, *ServiceError)
	DeleteItem(ctx context.Context, id string) *ServiceError
	SetItemImage(ctx context.Context, id string, imageURL string) (*models.Item, *ServiceError)
}

// itemServiceImpl implements ItemService.
type itemServiceImpl struct {
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, categoryRepo repository.CategoryRepository, logger *zap.Logger) ItemService {
	return &itemServiceImpl{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListItems returns items filtered by category, searched by name or
// description, and optionally narrowed to active items only.
func (s *itemServiceImpl) ListItems(ctx context.Context, categoryID, search string, activeOnly bool) ([]models.Item, *ServiceError) {
	filter := repository.ItemFilter{Search: search, ActiveOnly: activeOnly}

	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			// An unknown category simply matches nothing.
			return []models.Item{}, nil
		}
		filter.CategoryID = &id
	}

	items, err := s.itemRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list items", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return items, nil
}

// GetItem retrieves an item with its category.
func (s *itemServiceImpl) GetItem(ctx context.Context, id string) (*models.Item, *ServiceError) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Item not found"}
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Item not found"}
		}
		s.logger.Error("Failed to fetch item", zap.String("item_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return item, nil
}

// CreateItem creates a new menu item after checking the owning category
// exists.
func (s *itemServiceImpl) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, *ServiceError) {
	categoryID, svcErr := s.resolveCategory(ctx, req.CategoryID)
	if svcErr != nil {
		return nil, svcErr
	}

	item := &models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       decimal.NewFromFloat(req.Price).Round(2),
		ImageURL:    req.ImageURL,
		IsActive:    true,
		CategoryID:  categoryID,
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		s.logger.Error("Failed to create item", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	// Reload with the category populated for the response.
	created, err := s.itemRepo.FindByID(ctx, item.ID)
	if err != nil {
		s.logger.Error("Failed to reload created item", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Item created", zap.String("name", created.Name), zap.String("price", created.Price.String()))
	return created, nil
}

// UpdateItem applies the provided fields to an existing item. A changed
// category is checked for existence first.
func (s *itemServiceImpl) UpdateItem(ctx context.Context, id string, req *models.UpdateItemRequest) (*models.Item, *ServiceError) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Item not found"}
	}

	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Item not found"}
		}
		s.logger.Error("Failed to fetch item", zap.String("item_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	if req.CategoryID != nil {
		categoryID, svcErr := s.resolveCategory(ctx, *req.CategoryID)
		if svcErr != nil {
			return nil, svcErr
		}
		item.CategoryID = categoryID
		item.Category = nil
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		item.Price = decimal.NewFromFloat(*req.Price).Round(2)
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to update item", zap.String("item_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	updated, err := s.itemRepo.FindByID(ctx, item.ID)
	if err != nil {
		s.logger.Error("Failed to reload updated item", zap.String("item_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return updated, nil
}

// DeleteItem removes an item.
func (s *itemServiceImpl) DeleteItem(ctx context.Context, id string) *ServiceError {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return &ServiceError{StatusCode: 404, Message: "Item not found"}
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Item not found"}
		}
		s.logger.Error("Failed to delete item", zap.String("item_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Item deleted", zap.String("item_id", id))
	return nil
}

// SetItemImage records the uploaded image URL on an item.
func (s *itemServiceImpl) SetItemImage(ctx context.Context, id string, imageURL string) (*models.Item, *ServiceError) {
	item, svcErr := s.GetItem(ctx, id)
	if svcErr != nil {
		return nil, svcErr
	}

	item.ImageURL = &imageURL
	if err := s.itemRepo.Update(ctx, item); err != nil {
		s.logger.Error("Failed to set item image", zap.String("item_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return item, nil
}

// resolveCategory parses and existence-checks a category id from a request.
func (s *itemServiceImpl) resolveCategory(ctx context.Context, raw string) (uuid.UUID, *ServiceError) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ServiceError{StatusCode: 400, Message: "Category not found"}
	}

	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, &ServiceError{StatusCode: 400, Message: "Category not found"}
		}
		s.logger.Error("Failed to look up category", zap.String("category_id", raw), zap.Error(err))
		return uuid.Nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return categoryID, nil
}
