package services

import (
	"context"
	"errors"
	"time"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService defines the interface for admin authentication.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError)
}

// authServiceImpl implements AuthService.
type authServiceImpl struct {
	adminRepo repository.AdminRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repository.AdminRepository, jwtSecret string, tokenTTL time.Duration, logger *zap.Logger) AuthService {
	return &authServiceImpl{
		adminRepo: adminRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login checks the admin's credentials and issues a signed, time-limited JWT.
// Unknown email and wrong password return the same message so the response
// does not reveal which part failed.
func (s *authServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, *ServiceError) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
		}
		s.logger.Error("Failed to look up admin", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, &ServiceError{StatusCode: 401, Message: "Invalid credentials"}
	}

	token, err := s.generateToken(admin)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Internal server error"}
	}

	s.logger.Info("Admin logged in", zap.String("email", admin.Email))
	return &models.LoginResponse{
		Token: token,
		Admin: models.AdminBrief{ID: admin.ID.String(), Email: admin.Email},
	}, nil
}

// generateToken signs an HS256 token carrying the admin's id and email.
func (s *authServiceImpl) generateToken(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":    admin.ID.String(),
		"email": admin.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// HashPassword hashes a plaintext password with bcrypt. Used by the seed
// program and admin provisioning.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
