package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appRepos "github.com/keremavci/studentapi/internal/app/repositories"
)

// defaultStates is the state set inserted on first startup so the
// student form's state dropdown is never empty.
var defaultStates = []string{
	"California",
	"Texas",
	"New York",
	"Florida",
	"Washington",
}

// CreateDefaultData inserts the default state lookup rows if they don't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	stateRepo := appRepos.NewStateRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default state lookup data...")
	var finalErr error

	for _, name := range defaultStates {
		_, err := stateRepo.Create(ctx, name)
		if err != nil && !errors.Is(err, appRepos.ErrStateAlreadyExists) {
			lgr.Error().Err(err).Str("stateName", name).Msg("Error creating default state")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
