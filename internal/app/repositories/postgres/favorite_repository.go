package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/db"
	"github.com/yigit/collegehub/internal/pkg/dberrors"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

var favoriteColumns = []string{"id::text", "college_id::text", "user_id", "created_at", "updated_at"}

// FavoriteRepository handles the favorites table
type FavoriteRepository struct {
	db      *db.PostgresDB
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(pg *db.PostgresDB, timeout time.Duration) *FavoriteRepository {
	return &FavoriteRepository{
		db:      pg,
		sb:      statementBuilder(),
		timeout: timeout,
	}
}

func scanFavorite(row pgx.Row) (*models.Favorite, error) {
	f := &models.Favorite{}
	err := row.Scan(&f.ID, &f.CollegeID, &f.UserID, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// FindByUser returns the user's favorites in insertion order
func (r *FavoriteRepository) FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	sql, args, err := r.sb.Select(favoriteColumns...).
		From("favorites").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build find favorites query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing find favorites query")
		return nil, storeError("find favorites", err)
	}
	defer rows.Close()

	favorites := []*models.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, storeError("scan favorites", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate favorites", err)
	}
	return favorites, nil
}

// FindOne returns the favorite for the college and user
func (r *FavoriteRepository) FindOne(ctx context.Context, collegeID, userID string) (*models.Favorite, error) {
	key, err := parseID(collegeID)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(favoriteColumns...).
		From("favorites").
		Where(squirrel.Eq{"college_id": key, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storeError("build find favorite query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	f, err := scanFavorite(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		return nil, storeError("find favorite", err)
	}
	return f, nil
}

// Create inserts a favorite
func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	key, err := parseID(favorite.CollegeID)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	now := time.Now().UTC()

	sql, args, err := r.sb.Insert("favorites").
		Columns("id", "college_id", "user_id", "created_at", "updated_at").
		Values(id, key, favorite.UserID, now, now).
		ToSql()
	if err != nil {
		return storeError("build create favorite query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, favoritesUniqueKey) {
			return repositories.ErrDuplicate
		}
		logger.Error().Err(err).Str("collegeID", favorite.CollegeID).Msg("Error inserting favorite")
		return storeError("insert favorite", err)
	}

	favorite.ID = id
	favorite.CreatedAt = now
	favorite.UpdatedAt = now
	return nil
}

// DeleteByID removes a favorite by ID
func (r *FavoriteRepository) DeleteByID(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}
	return r.delete(ctx, squirrel.Eq{"id": key})
}

// DeleteByCollege removes the user's favorite for the college
func (r *FavoriteRepository) DeleteByCollege(ctx context.Context, collegeID, userID string) error {
	key, err := parseID(collegeID)
	if err != nil {
		return err
	}
	return r.delete(ctx, squirrel.Eq{"college_id": key, "user_id": userID})
}

func (r *FavoriteRepository) delete(ctx context.Context, where squirrel.Eq) error {
	sql, args, err := r.sb.Delete("favorites").Where(where).ToSql()
	if err != nil {
		return storeError("build delete favorite query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	tag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting favorite")
		return storeError("delete favorite", err)
	}
	if tag.RowsAffected() == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
