package controllers

import (
	"net/http"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
)

// AuthController handles HTTP requests for admin authentication.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	resp, svcErr := ac.authService.Login(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: resp})
}
