package controllers

import (
	"net/http"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for order operations.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// ListOrders handles GET /api/orders (admin only) with optional status and
// tableNumber filters.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	orders, svcErr := oc.orderService.ListOrders(ctx.Request.Context(), ctx.Query("status"), ctx.Query("tableNumber"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: orders})
}

// GetOrder handles GET /api/orders/:id (admin only).
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: order})
}

// CreateOrder handles POST /api/orders. No authentication: any customer at a
// table may place an order.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	order, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, models.APIResponse{
		Success: true,
		Data:    order,
		Message: "Order created successfully",
	})
}

// UpdateOrderStatus handles PATCH /api/orders/:id/status (admin only).
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var req models.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	order, svcErr := oc.orderService.UpdateOrderStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{
		Success: true,
		Data:    order,
		Message: "Order status updated successfully",
	})
}
