package services

import (
	"context"
	"errors"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryService defines the interface for category business logic.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, *ServiceError)
	GetCategory(ctx context.Context, id string) (*models.Category, *ServiceError)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError)
	DeleteCategory(ctx context.Context, id string) *ServiceError
}

// categoryServiceImpl implements CategoryService.
type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *zap.Logger) CategoryService {
	return &categoryServiceImpl{categoryRepo: categoryRepo, logger: logger}
}

// ListCategories returns all active categories.
func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.categoryRepo.FindActive(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return categories, nil
}

// GetCategory retrieves a category with its items.
func (s *categoryServiceImpl) GetCategory(ctx context.Context, id string) (*models.Category, *ServiceError) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
	}

	category, err := s.categoryRepo.FindByIDWithItems(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to fetch category", zap.String("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return category, nil
}

// CreateCategory creates a new category. Active defaults to true when omitted.
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, *ServiceError) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		s.logger.Error("Failed to create category", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Category created", zap.String("name", category.Name))
	return category, nil
}

// UpdateCategory applies the provided fields to an existing category.
func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, *ServiceError) {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
	}

	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to fetch category", zap.String("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		s.logger.Error("Failed to update category", zap.String("category_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	return category, nil
}

// DeleteCategory removes a category.
func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id string) *ServiceError {
	categoryID, err := uuid.Parse(id)
	if err != nil {
		return &ServiceError{StatusCode: 404, Message: "Category not found"}
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{StatusCode: 404, Message: "Category not found"}
		}
		s.logger.Error("Failed to delete category", zap.String("category_id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Category deleted", zap.String("category_id", id))
	return nil
}
