package repositories

import (
	"context"
	"errors"

	"github.com/yigit/collegehub/internal/app/models"
)

var (
	// ErrNotFound is returned when no record matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write would break a uniqueness rule.
	ErrDuplicate = errors.New("duplicate record")
)

// CollegeRepository reads and seeds colleges
type CollegeRepository interface {
	// Find returns the colleges matching q in the requested order.
	Find(ctx context.Context, q models.CollegeQuery) ([]*models.College, error)
	// FindByID returns ErrNotFound for unknown or unparseable ids.
	FindByID(ctx context.Context, id string) (*models.College, error)
	// FindByIDs returns the colleges that exist, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*models.College, error)
	Count(ctx context.Context) (int64, error)
	// ReplaceAll removes every college and inserts colleges, assigning ids.
	ReplaceAll(ctx context.Context, colleges []*models.College) error
}

// ReviewRepository reads and appends reviews
type ReviewRepository interface {
	// FindAll returns reviews, newest first.
	FindAll(ctx context.Context) ([]*models.Review, error)
	Count(ctx context.Context) (int64, error)
	// Create stores review and sets its ID and CreatedAt.
	Create(ctx context.Context, review *models.Review) error
}

// FavoriteRepository manages favorites. Returned favorites have College set only when
// the store keeps a copy of it.
type FavoriteRepository interface {
	FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error)
	FindOne(ctx context.Context, collegeID, userID string) (*models.Favorite, error)
	// Create stores favorite and sets its ID and timestamps. A second favorite for the same
	// college and user returns ErrDuplicate.
	Create(ctx context.Context, favorite *models.Favorite) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByCollege(ctx context.Context, collegeID, userID string) error
}

// Repositories holds the repositories of one store
type Repositories struct {
	// Name identifies the store in logs and metrics.
	Name               string
	CollegeRepository  CollegeRepository
	ReviewRepository   ReviewRepository
	FavoriteRepository FavoriteRepository
}
