package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock Service ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *services.ServiceError) {
	args := m.Called(ctx, req)
	if args.Get(1) != nil {
		return nil, args.Get(1).(*services.ServiceError)
	}
	return args.Get(0).(*models.LoginResponse), nil
}

func newAuthRouter(svc services.AuthService) *gin.Engine {
	router := gin.New()
	router.POST("/api/auth/login", NewAuthController(svc).Login)
	return router
}

// --- Tests ---

func TestLoginController(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("Success - 200 OK", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, mock.MatchedBy(func(req *models.LoginRequest) bool {
			return req.Email == "admin@fabiocafe.com" && req.Password == "admin123"
		})).Return(&models.LoginResponse{
			Token: "signed-token",
			Admin: models.AdminBrief{ID: "some-id", Email: "admin@fabiocafe.com"},
		}, nil).Once()

		router := newAuthRouter(mockService)
		recorder := postJSON(router, "/api/auth/login", `{"email": "admin@fabiocafe.com", "password": "admin123"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeEnvelope(t, recorder)
		assert.True(t, resp.Success)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid credentials - 401", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, mock.Anything).
			Return(nil, &services.ServiceError{StatusCode: 401, Message: "Invalid credentials"}).Once()

		router := newAuthRouter(mockService)
		recorder := postJSON(router, "/api/auth/login", `{"email": "admin@fabiocafe.com", "password": "wrong-pass"}`)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		resp := decodeEnvelope(t, recorder)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid credentials", resp.Error)
	})

	t.Run("Malformed email - 400 validation", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService)

		recorder := postJSON(router, "/api/auth/login", `{"email": "not-an-email", "password": "admin123"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeEnvelope(t, recorder)
		assert.Equal(t, "Validation failed", resp.Error)
		require.NotEmpty(t, resp.Details)
		assert.Contains(t, detailFields(resp), "email")
		assert.Equal(t, "Must be a valid email address", resp.Details[0].Message)
		mockService.AssertNotCalled(t, "Login")
	})

	t.Run("Password under six characters - 400 validation", func(t *testing.T) {
		mockService := new(MockAuthService)
		router := newAuthRouter(mockService)

		recorder := postJSON(router, "/api/auth/login", `{"email": "admin@fabiocafe.com", "password": "short"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		resp := decodeEnvelope(t, recorder)
		assert.Contains(t, detailFields(resp), "password")
		mockService.AssertNotCalled(t, "Login")
	})
}
