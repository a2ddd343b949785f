package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderService defines the interface for order business logic.
type OrderService interface {
	ListOrders(ctx context.Context, status, tableNumber string) ([]models.Order, *ServiceError)
	GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError)
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError)
	UpdateOrderStatus(ctx context.Context, id string, status string) (*models.Order, *ServiceError)
}

// orderServiceImpl implements OrderService.
type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	tableRepo repository.TableRepository
	itemRepo  repository.ItemRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	tableRepo repository.TableRepository,
	itemRepo repository.ItemRepository,
	logger *zap.Logger,
) OrderService {
	return &orderServiceImpl{
		orderRepo: orderRepo,
		tableRepo: tableRepo,
		itemRepo:  itemRepo,
		logger:    logger,
	}
}

// ListOrders returns orders optionally filtered by status and table number.
// Filter values arrive as raw query strings; unparseable ones are ignored so
// the listing degrades to unfiltered rather than erroring.
func (s *orderServiceImpl) ListOrders(ctx context.Context, status, tableNumber string) ([]models.Order, *ServiceError) {
	filter := repository.OrderFilter{}

	if status != "" {
		st := models.OrderStatus(status)
		filter.Status = &st
	}
	if tableNumber != "" {
		if n, err := strconv.Atoi(tableNumber); err == nil {
			filter.TableNumber = &n
		}
	}

	orders, err := s.orderRepo.Find(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return orders, nil
}

// GetOrder retrieves a single fully-populated order.
func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*models.Order, *ServiceError) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to fetch order", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}
	return order, nil
}

// CreateOrder validates the referenced table and items, computes the
// authoritative total from current catalog prices, and persists the order with
// its line items atomically. Each line captures the item's price at order time;
// later catalog price changes never affect it.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, *ServiceError) {
	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		// A malformed id can never resolve to a table.
		return nil, &ServiceError{StatusCode: 400, Message: "Table not found"}
	}

	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 400, Message: "Table not found"}
		}
		s.logger.Error("Failed to look up table", zap.String("table_id", req.TableID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	// Bulk-resolve the distinct requested item ids, active items only. Ids
	// that fail to parse are counted as requested but can never resolve, so
	// the whole request fails below.
	distinct := make(map[string]uuid.UUID)
	unparseable := 0
	for _, line := range req.Items {
		if _, seen := distinct[line.ItemID]; seen {
			continue
		}
		itemID, err := uuid.Parse(line.ItemID)
		if err != nil {
			unparseable++
			distinct[line.ItemID] = uuid.Nil
			continue
		}
		distinct[line.ItemID] = itemID
	}

	itemIDs := make([]uuid.UUID, 0, len(distinct))
	for _, id := range distinct {
		if id != uuid.Nil {
			itemIDs = append(itemIDs, id)
		}
	}

	var found []models.Item
	if len(itemIDs) > 0 {
		found, err = s.itemRepo.FindActiveByIDs(ctx, itemIDs)
		if err != nil {
			s.logger.Error("Failed to resolve order items", zap.Error(err))
			return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
		}
	}

	// All-or-nothing: any unknown or inactive item fails the whole request.
	if len(found) != len(distinct) {
		return nil, &ServiceError{StatusCode: 400, Message: "Some items not found or inactive"}
	}

	byID := make(map[uuid.UUID]models.Item, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	// Compute the total and snapshot each line's price from the same bulk
	// read, so total and line prices always agree.
	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		item := byID[distinct[line.ItemID]]
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ItemID:   item.ID,
			Quantity: line.Quantity,
			Price:    item.Price,
		})
	}

	order := &models.Order{
		TableID:     table.ID,
		TableNumber: table.Number,
		TotalPrice:  total,
		Status:      models.OrderStatusPending,
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, orderItems); err != nil {
		s.logger.Error("Failed to persist order", zap.String("table_id", req.TableID), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	created, err := s.orderRepo.FindByID(ctx, order.ID)
	if err != nil {
		s.logger.Error("Failed to reload created order", zap.String("order_id", order.ID.String()), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Order created",
		zap.String("order_id", created.ID.String()),
		zap.Int("table_number", created.TableNumber),
		zap.Int("lines", len(created.Items)),
		zap.String("total_price", created.TotalPrice.String()),
	)
	return created, nil
}

// UpdateOrderStatus sets an order's status to any member of the status
// enumeration. No transition graph is enforced.
func (s *orderServiceImpl) UpdateOrderStatus(ctx context.Context, id string, status string) (*models.Order, *ServiceError) {
	newStatus := models.OrderStatus(status)
	if !newStatus.IsValid() {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    "Invalid status. Valid statuses are: PENDING, PREPARING, READY, COMPLETED, CANCELLED",
		}
	}

	orderID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Order not found"}
		}
		s.logger.Error("Failed to update order status", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		s.logger.Error("Failed to reload updated order", zap.String("order_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", string(newStatus)),
	)
	return order, nil
}
