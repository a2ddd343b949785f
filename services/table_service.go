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

// TableService defines the interface for table reads.
type TableService interface {
	ListTables(ctx context.Context) ([]models.Table, *ServiceError)
	GetTable(ctx context.Context, id string) (*models.Table, *ServiceError)
}

// tableServiceImpl implements TableService.
type tableServiceImpl struct {
	tableRepo repository.TableRepository
	logger    *zap.Logger
}

// NewTableService creates a new TableService.
func NewTableService(tableRepo repository.TableRepository, logger *zap.Logger) TableService {
	return &tableServiceImpl{tableRepo: tableRepo, logger: logger}
}

// ListTables returns every table ordered by number.
func (s *tableServiceImpl) ListTables(ctx context.Context) ([]models.Table, *ServiceError) {
	tables, err := s.tableRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list tables", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return tables, nil
}

// GetTable retrieves a table with its active orders embedded.
func (s *tableServiceImpl) GetTable(ctx context.Context, id string) (*models.Table, *ServiceError) {
	tableID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Table not found"}
	}

	table, err := s.tableRepo.FindByIDWithActiveOrders(ctx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Table not found"}
		}
		s.logger.Error("Failed to fetch table", zap.String("table_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return table, nil
}
