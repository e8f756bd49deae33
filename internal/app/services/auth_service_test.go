package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/models/dto"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/auth"
)

type mockAdminUserStore struct {
	createFn     func(ctx context.Context, user *models.AdminUser) error
	getByEmailFn func(ctx context.Context, email string) (*models.AdminUser, error)
	getByIDFn    func(ctx context.Context, id int64) (*models.AdminUser, error)
}

func (m *mockAdminUserStore) Create(ctx context.Context, user *models.AdminUser) error {
	return m.createFn(ctx, user)
}

func (m *mockAdminUserStore) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockAdminUserStore) GetByID(ctx context.Context, id int64) (*models.AdminUser, error) {
	return m.getByIDFn(ctx, id)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "schoolhub-test",
	})
}

func TestRegisterIssuesToken(t *testing.T) {
	store := &mockAdminUserStore{
		createFn: func(ctx context.Context, user *models.AdminUser) error {
			if user.PasswordHash == "hunter2secret" {
				t.Error("password must not be stored in plaintext")
			}
			user.ID = 1
			return nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "hunter2secret",
		FullName: "Admin User",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if resp.Token.AccessToken == "" {
		t.Error("expected an access token")
	}
	if resp.Token.TokenType != "Bearer" {
		t.Errorf("expected Bearer token type, got %q", resp.Token.TokenType)
	}
	if resp.Token.ExpiresIn != 3600 {
		t.Errorf("expected 3600s expiry, got %d", resp.Token.ExpiresIn)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	store := &mockAdminUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return &models.AdminUser{ID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	store := &mockAdminUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginIssuesValidToken(t *testing.T) {
	hash, err := auth.HashPassword("correct-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	store := &mockAdminUserStore{
		getByEmailFn: func(ctx context.Context, email string) (*models.AdminUser, error) {
			return &models.AdminUser{ID: 7, Email: email, PasswordHash: hash}, nil
		},
	}
	jwtService := testJWTService()
	svc := NewAuthService(store, jwtService)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct-password",
	})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	claims, err := jwtService.ValidateToken(resp.Token.AccessToken)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "admin@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	store := &mockAdminUserStore{
		getByIDFn: func(ctx context.Context, id int64) (*models.AdminUser, error) {
			return nil, nil
		},
	}
	svc := NewAuthService(store, testJWTService())

	_, err := svc.GetProfile(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrAdminUserNotFound) {
		t.Errorf("expected ErrAdminUserNotFound, got %v", err)
	}
}
