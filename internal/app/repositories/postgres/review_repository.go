package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/db"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

// ReviewRepository handles the reviews table
type ReviewRepository struct {
	db      *db.PostgresDB
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(pg *db.PostgresDB, timeout time.Duration) *ReviewRepository {
	return &ReviewRepository{
		db:      pg,
		sb:      statementBuilder(),
		timeout: timeout,
	}
}

// FindAll returns all reviews, newest first
func (r *ReviewRepository) FindAll(ctx context.Context) ([]*models.Review, error) {
	sql, args, err := r.sb.Select("id::text", "college_name", "rating", "comment", "created_at").
		From("reviews").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, storeError("build find reviews query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find reviews query")
		return nil, storeError("find reviews", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(&review.ID, &review.CollegeName, &review.Rating, &review.Comment, &review.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning review row")
			return nil, storeError("scan reviews", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("iterate reviews", err)
	}
	return reviews, nil
}

// Count returns the number of review rows
func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var n int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM reviews").Scan(&n); err != nil {
		return 0, storeError("count reviews", err)
	}
	return n, nil
}

// Create inserts a review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	id := uuid.NewString()
	now := time.Now().UTC()

	sql, args, err := r.sb.Insert("reviews").
		Columns("id", "college_name", "rating", "comment", "created_at").
		Values(id, review.CollegeName, review.Rating, review.Comment, now).
		ToSql()
	if err != nil {
		return storeError("build create review query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.db.Pool.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error inserting review")
		return storeError("insert review", err)
	}

	review.ID = id
	review.CreatedAt = now
	return nil
}
