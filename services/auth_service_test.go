package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type mockAdminRepo struct {
	admins map[string]*models.Admin
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]*models.Admin)}
}

func (m *mockAdminRepo) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	a, ok := m.admins[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (m *mockAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	m.admins[admin.Email] = admin
	return nil
}

const testJWTSecret = "test-secret"

func newTestAuthService(t *testing.T, email, password string) services.AuthService {
	t.Helper()
	repo := newMockAdminRepo()
	hash, err := services.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.Admin{Email: email, Password: hash}))

	logger, _ := zap.NewDevelopment()
	return services.NewAuthService(repo, testJWTSecret, time.Hour, logger)
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials issue a signed token", func(t *testing.T) {
		svc := newTestAuthService(t, "admin@fabiocafe.com", "admin123")

		resp, svcErr := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "admin@fabiocafe.com",
			Password: "admin123",
		})

		require.Nil(t, svcErr)
		require.NotNil(t, resp)
		assert.Equal(t, "admin@fabiocafe.com", resp.Admin.Email)
		assert.NotEmpty(t, resp.Admin.ID)

		parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		require.True(t, parsed.Valid)

		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "admin@fabiocafe.com", claims["email"])
		assert.Equal(t, resp.Admin.ID, claims["id"])
		assert.NotNil(t, claims["exp"])
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		svc := newTestAuthService(t, "admin@fabiocafe.com", "admin123")

		resp, svcErr := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "admin@fabiocafe.com",
			Password: "wrong-password",
		})

		assert.Nil(t, resp)
		require.NotNil(t, svcErr)
		assert.Equal(t, 401, svcErr.StatusCode)
		assert.Equal(t, "Invalid credentials", svcErr.Message)
	})

	t.Run("unknown email gets the same 401 as a wrong password", func(t *testing.T) {
		svc := newTestAuthService(t, "admin@fabiocafe.com", "admin123")

		resp, svcErr := svc.Login(context.Background(), &models.LoginRequest{
			Email:    "nobody@fabiocafe.com",
			Password: "admin123",
		})

		assert.Nil(t, resp)
		require.NotNil(t, svcErr)
		assert.Equal(t, 401, svcErr.StatusCode)
		assert.Equal(t, "Invalid credentials", svcErr.Message)
	})
}
