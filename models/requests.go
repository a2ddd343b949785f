package models

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse carries the issued token and the admin's public identity.
type LoginResponse struct {
	Token string     `json:"token"`
	Admin AdminBrief `json:"admin"`
}

// AdminBrief is what login exposes about an admin.
type AdminBrief struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateCategoryRequest is the payload for updating a category. All fields are
// optional; absent fields are left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CreateItemRequest is the payload for creating a menu item.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0,lte=1000000"`
	ImageURL    *string `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool   `json:"isActive"`
	CategoryID  string  `json:"categoryId" binding:"required"`
}

// UpdateItemRequest is the payload for updating a menu item.
type UpdateItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0,lte=1000000"`
	ImageURL    *string  `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool    `json:"isActive"`
	CategoryID  *string  `json:"categoryId" binding:"omitempty,min=1"`
}

// OrderLineRequest is one requested (item, quantity) pair.
type OrderLineRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0,lte=100"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	TableID string             `json:"tableId" binding:"required"`
	Items   []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest is the payload for an order status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
