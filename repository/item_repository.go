package repository

import (
	"context"

	"github.com/2az2000/fabioCoffee/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemFilter narrows the item listing.
type ItemFilter struct {
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
}

// ItemRepository defines the interface for menu item data access.
type ItemRepository interface {
	Find(ctx context.Context, filter ItemFilter) ([]models.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormItemRepository implements ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository.
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// Find retrieves items matching the filter, with their category preloaded,
// ordered by name.
func (r *GormItemRepository) Find(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	query := r.db.WithContext(ctx).Model(&models.Item{}).Preload("Category")

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var items []models.Item
	if err := query.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID retrieves an item with its category preloaded.
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// FindActiveByIDs bulk-resolves the given ids, returning only currently-active
// items. Callers compare the result count against the request to detect
// unknown or inactive items.
func (r *GormItemRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new item.
func (r *GormItemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update saves changes to an existing item.
func (r *GormItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes an item by id.
func (r *GormItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
