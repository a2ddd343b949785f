package routes

import (
	"net/http"

	"github.com/2az2000/fabioCoffee/controllers"
	"github.com/2az2000/fabioCoffee/middleware"
	"github.com/2az2000/fabioCoffee/models"

	"github.com/gin-gonic/gin"
)

// Controllers bundles the HTTP controllers registered on the router.
type Controllers struct {
	Auth     *controllers.AuthController
	Category *controllers.CategoryController
	Item     *controllers.ItemController
	Table    *controllers.TableController
	Order    *controllers.OrderController
}

// RegisterRoutes sets up all API routes. Guest-facing reads and order
// placement are public; everything that mutates the menu or order state
// requires an admin token.
func RegisterRoutes(r *gin.Engine, c *Controllers, jwtSecret string, loginLimiter *middleware.RateLimiter) {
	api := r.Group("/api")
	admin := middleware.AuthMiddleware(jwtSecret)

	authRoutes := api.Group("/auth")
	if loginLimiter != nil {
		authRoutes.Use(loginLimiter.Middleware())
	}
	authRoutes.POST("/login", c.Auth.Login)

	categoryRoutes := api.Group("/categories")
	{
		categoryRoutes.GET("", c.Category.ListCategories)
		categoryRoutes.GET("/:id", c.Category.GetCategory)
		categoryRoutes.POST("", admin, c.Category.CreateCategory)
		categoryRoutes.PUT("/:id", admin, c.Category.UpdateCategory)
		categoryRoutes.DELETE("/:id", admin, c.Category.DeleteCategory)
	}

	itemRoutes := api.Group("/items")
	{
		itemRoutes.GET("", c.Item.ListItems)
		itemRoutes.GET("/:id", c.Item.GetItem)
		itemRoutes.POST("", admin, c.Item.CreateItem)
		itemRoutes.PUT("/:id", admin, c.Item.UpdateItem)
		itemRoutes.DELETE("/:id", admin, c.Item.DeleteItem)
		itemRoutes.POST("/:id/image", admin, c.Item.UploadItemImage)
	}

	tableRoutes := api.Group("/tables")
	{
		tableRoutes.GET("", c.Table.ListTables)
		tableRoutes.GET("/:id", c.Table.GetTable)
	}

	orderRoutes := api.Group("/orders")
	{
		orderRoutes.POST("", c.Order.CreateOrder)
		orderRoutes.GET("", admin, c.Order.ListOrders)
		orderRoutes.GET("/:id", admin, c.Order.GetOrder)
		orderRoutes.PATCH("/:id/status", admin, c.Order.UpdateOrderStatus)
	}

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, models.APIResponse{Success: false, Error: "Route not found"})
	})
}
