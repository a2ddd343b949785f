package middleware

import (
	"net/http"
	"strings"

	"github.com/2az2000/fabioCoffee/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// AdminIDKey is the gin context key holding the authenticated admin's id.
	AdminIDKey = "adminID"
	// AdminEmailKey is the gin context key holding the authenticated admin's email.
	AdminEmailKey = "adminEmail"
)

// AuthMiddleware verifies the Bearer token and stores the admin identity in
// the request context. A missing token yields 401, a bad or expired one 403.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	secret := []byte(jwtSecret)

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.APIResponse{
				Success: false,
				Error:   "Access token required",
			})
			return
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, models.APIResponse{
				Success: false,
				Error:   "Invalid or expired token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, models.APIResponse{
				Success: false,
				Error:   "Invalid or expired token",
			})
			return
		}

		if id, ok := claims["id"].(string); ok {
			c.Set(AdminIDKey, id)
		}
		if email, ok := claims["email"].(string); ok {
			c.Set(AdminEmailKey, email)
		}
		c.Next()
	}
}
