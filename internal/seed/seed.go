// Package seed loads the default colleges into a persistent store.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/app/repositories/memory"
)

// Colleges returns the default colleges without ids, ready for a store to assign its own
func Colleges() []*models.College {
	colleges := memory.DefaultColleges()
	for _, c := range colleges {
		c.ID = ""
	}
	return colleges
}

// ReplaceColleges deletes every college in repo and inserts the default colleges
func ReplaceColleges(ctx context.Context, repo repositories.CollegeRepository, lgr zerolog.Logger) ([]*models.College, error) {
	colleges := Colleges()
	if err := repo.ReplaceAll(ctx, colleges); err != nil {
		return nil, fmt.Errorf("failed to replace colleges: %w", err)
	}

	for _, c := range colleges {
		lgr.Info().Str("id", c.ID).Str("name", c.Name).Msg("College seeded")
	}
	return colleges, nil
}

// CreateDefaultData seeds the default colleges when the store holds none. It reports
// whether colleges were inserted.
func CreateDefaultData(ctx context.Context, repo repositories.CollegeRepository, lgr zerolog.Logger) (bool, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count colleges: %w", err)
	}
	if n > 0 {
		lgr.Debug().Int64("colleges", n).Msg("Colleges present, skipping seed")
		return false, nil
	}

	lgr.Info().Msg("No colleges stored, seeding defaults...")
	if _, err := ReplaceColleges(ctx, repo, lgr); err != nil {
		return false, err
	}
	return true, nil
}
