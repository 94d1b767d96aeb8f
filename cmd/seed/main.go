// Command seed replaces the stored colleges with the default set.
package main

import (
	"context"
	"os"

	"github.com/yigit/collegehub/internal/bootstrap"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"github.com/yigit/collegehub/internal/seed"
)

func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}
	// Seeding on connect would insert the defaults before they are replaced.
	cfg.Database.SeedOnStartup = false

	ctx := context.Background()
	store, err := bootstrap.SetupStore(ctx, cfg, lgr)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open store")
		os.Exit(1)
	}
	defer store.Close()

	colleges, err := seed.ReplaceColleges(ctx, store.Repos.CollegeRepository, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("store", store.Repos.Name).Msg("Seeding failed")
		store.Close()
		os.Exit(1)
	}

	lgr.Info().Int("colleges", len(colleges)).Str("store", store.Repos.Name).Msg("Seed complete")
}
