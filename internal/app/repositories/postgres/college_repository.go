package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/db"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

var collegeColumns = []string{"id::text", "name", "location", "course", "fee"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CollegeRepository handles the colleges table
type CollegeRepository struct {
	db      *db.PostgresDB
	sb      squirrel.StatementBuilderType
	timeout time.Duration
}

// NewCollegeRepository creates a new CollegeRepository
func NewCollegeRepository(pg *db.PostgresDB, timeout time.Duration) *CollegeRepository {
	return &CollegeRepository{
		db:      pg,
		sb:      statementBuilder(),
		timeout: timeout,
	}
}

// collegeSelect builds the query for q. Insertion position breaks fee ties so the order
// is stable.
func collegeSelect(sb squirrel.StatementBuilderType, q models.CollegeQuery) squirrel.SelectBuilder {
	query := sb.Select(collegeColumns...).From("colleges")

	if q.Location != "" {
		query = query.Where(squirrel.Eq{"location": q.Location})
	}
	if q.Course != "" {
		query = query.Where(squirrel.Eq{"course": q.Course})
	}
	if q.MinFee != nil {
		query = query.Where(squirrel.GtOrEq{"fee": *q.MinFee})
	}
	if q.MaxFee != nil {
		query = query.Where(squirrel.LtOrEq{"fee": *q.MaxFee})
	}
	if q.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + likeEscaper.Replace(q.Search) + "%"})
	}

	switch q.SortBy {
	case models.SortFeeAsc:
		query = query.OrderBy("fee ASC", "position ASC")
	case models.SortFeeDesc:
		query = query.OrderBy("fee DESC", "position ASC")
	default:
		query = query.OrderBy("position ASC")
	}
	return query
}

func scanColleges(rows pgx.Rows) ([]*models.College, error) {
	defer rows.Close()

	colleges := []*models.College{}
	for rows.Next() {
		c := &models.College{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Location, &c.Course, &c.Fee); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}

// Find returns colleges matching q
func (r *CollegeRepository) Find(ctx context.Context, q models.CollegeQuery) ([]*models.College, error) {
	sql, args, err := collegeSelect(r.sb, q).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find colleges SQL")
		return nil, storeError("build find colleges query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing find colleges query")
		return nil, storeError("find colleges", err)
	}

	colleges, err := scanColleges(rows)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning college rows")
		return nil, storeError("scan colleges", err)
	}
	return colleges, nil
}

// FindByID retrieves a college by ID
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	key, err := parseID(id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"id": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, storeError("build find college query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	c := &models.College{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.Location, &c.Course, &c.Fee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repositories.ErrNotFound
		}
		logger.Error().Err(err).Str("collegeID", id).Msg("Error scanning college row")
		return nil, storeError("find college", err)
	}
	return c, nil
}

// FindByIDs retrieves the colleges that exist among ids
func (r *CollegeRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*models.College, error) {
	found := make(map[string]*models.College, len(ids))

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if key, err := parseID(id); err == nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return found, nil
	}

	sql, args, err := r.sb.Select(collegeColumns...).
		From("colleges").
		Where(squirrel.Eq{"id": keys}).
		ToSql()
	if err != nil {
		return nil, storeError("build find colleges by ids query", err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error finding colleges by IDs")
		return nil, storeError("find colleges by ids", err)
	}

	colleges, err := scanColleges(rows)
	if err != nil {
		return nil, storeError("scan colleges", err)
	}
	for _, c := range colleges {
		found[c.ID] = c
	}
	return found, nil
}

// Count returns the number of college rows
func (r *CollegeRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var n int64
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM colleges").Scan(&n); err != nil {
		logger.Error().Err(err).Msg("Error counting colleges")
		return 0, storeError("count colleges", err)
	}
	return n, nil
}

// ReplaceAll deletes every college and inserts colleges in one transaction
func (r *CollegeRepository) ReplaceAll(ctx context.Context, colleges []*models.College) error {
	ids := make([]string, len(colleges))
	insert := r.sb.Insert("colleges").Columns("id", "name", "location", "course", "fee")
	for i, c := range colleges {
		ids[i] = uuid.NewString()
		insert = insert.Values(ids[i], c.Name, c.Location, c.Course, c.Fee)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM colleges"); err != nil {
			return err
		}
		if len(colleges) == 0 {
			return nil
		}

		sql, args, err := insert.ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Msg("Error replacing colleges")
		return storeError("replace colleges", err)
	}

	for i, c := range colleges {
		c.ID = ids[i]
	}
	return nil
}
