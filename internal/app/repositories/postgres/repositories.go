// Package postgres implements the repositories on PostgreSQL tables.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/db"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

// StoreName identifies PostgreSQL in logs and metrics
const StoreName = "postgres"

// favoritesUniqueKey is the constraint created by 001_init.sql
const favoritesUniqueKey = "favorites_college_user_key"

// NewRepositories creates the PostgreSQL repositories on pg
func NewRepositories(pg *db.PostgresDB, timeout time.Duration) *repositories.Repositories {
	return &repositories.Repositories{
		Name:               StoreName,
		CollegeRepository:  NewCollegeRepository(pg, timeout),
		ReviewRepository:   NewReviewRepository(pg, timeout),
		FavoriteRepository: NewFavoriteRepository(pg, timeout),
	}
}

func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// storeError marks a driver error as a store failure
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreUnavailable, op, err)
}

// withTimeout bounds a single store call
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// parseID normalises an API id. Ids that are not UUIDs cannot exist in the tables.
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", repositories.ErrNotFound
	}
	return parsed.String(), nil
}
