package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/dkaya/melodica/internal/app/models"
	appRepos "github.com/dkaya/melodica/internal/app/repositories"
	"github.com/dkaya/melodica/internal/pkg/apperrors"
)

// CreateDefaultData ensures a default admin account exists. Identity comes
// from the external provider, so the account carries no credentials here;
// signing in with the seeded email grants the admin dashboard.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	admin := &appModels.User{
		Email: "admin@melodica.app",
		Name:  "System Administrator",
		Role:  appModels.RoleAdmin,
	}

	err := userRepo.Create(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin account already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin account created")
	return nil
}
