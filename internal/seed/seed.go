package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"schoolhub/internal/app/models"
	"schoolhub/internal/app/repositories"
	"schoolhub/internal/pkg/apperrors"
	"schoolhub/internal/pkg/auth"
)

// Default admin credentials created on first startup. The password is
// meant to be changed immediately in any real deployment.
const (
	defaultAdminEmail    = "admin@schoolhub.local"
	defaultAdminPassword = "changeme123"
	defaultAdminName     = "Default Administrator"
)

// CreateDefaultData creates the default admin account if no account with
// the default email exists yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminUserRepository(dbPool)

	existing, err := adminRepo.GetByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for default admin account")
		return err
	}
	if existing != nil {
		return nil
	}

	passwordHash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &models.AdminUser{
		Email:        defaultAdminEmail,
		PasswordHash: passwordHash,
		FullName:     defaultAdminName,
	}

	if err := adminRepo.Create(ctx, admin); err != nil {
		// Another instance may have created it in the meantime
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created")
	return nil
}
