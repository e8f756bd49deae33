package services

import (
	"context"
	"fmt"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/auth"
)

// AdminUserStore is the persistence surface the auth service relies on
type AdminUserStore interface {
	Create(ctx context.Context, user *models.AdminUser) error
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
}

// AuthService handles admin registration and authentication
type AuthService struct {
	adminRepo  AdminUserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(adminRepo AdminUserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Register creates a new admin account and issues its first token
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.AdminUser{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
	}

	if err := s.adminRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

// Login authenticates an admin account and issues an access token.
// Unknown emails and wrong passwords both surface as invalid
// credentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.buildAuthResponse(user)
}

// GetProfile retrieves the authenticated admin account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.AdminUser, error) {
	user, err := s.adminRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrAdminUserNotFound
	}

	return user, nil
}

func (s *AuthService) buildAuthResponse(user *models.AdminUser) (*dto.AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: user,
	}, nil
}
