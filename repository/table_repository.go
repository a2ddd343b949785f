package repository

import (
	"context"

	"github.com/2az2000/fabioCoffee/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TableRepository defines the interface for table data access.
type TableRepository interface {
	FindAll(ctx context.Context) ([]models.Table, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Table, error)
	FindByIDWithActiveOrders(ctx context.Context, id uuid.UUID) (*models.Table, error)
}

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db *gorm.DB
}

// NewGormTableRepository creates a new GormTableRepository.
func NewGormTableRepository(db *gorm.DB) TableRepository {
	return &GormTableRepository{db: db}
}

// FindAll retrieves every table ordered by table number.
func (r *GormTableRepository) FindAll(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := r.db.WithContext(ctx).Order("number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

// FindByID retrieves a table by id.
func (r *GormTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	var table models.Table
	if err := r.db.WithContext(ctx).First(&table, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

// FindByIDWithActiveOrders retrieves a table together with its orders that are
// still in an active state, each with line items and their items.
func (r *GormTableRepository) FindByIDWithActiveOrders(ctx context.Context, id uuid.UUID) (*models.Table, error) {
	var table models.Table
	err := r.db.WithContext(ctx).
		Preload("Orders", "status IN ?", models.ActiveOrderStatuses).
		Preload("Orders.Items").
		Preload("Orders.Items.Item").
		First(&table, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}
