package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/collegehub/internal/app/models"
)

// ReviewRepository serves reviews from the fallback dataset
type ReviewRepository struct {
	store *Store
}

// FindAll returns the held reviews in held order; new reviews are prepended
func (r *ReviewRepository) FindAll(_ context.Context) ([]*models.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*models.Review, 0, len(r.store.reviews))
	for _, review := range r.store.reviews {
		cp := *review
		result = append(result, &cp)
	}
	return result, nil
}

// Count returns the number of held reviews
func (r *ReviewRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.reviews)), nil
}

// Create assigns an id and timestamp and prepends the review
func (r *ReviewRepository) Create(_ context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	cp := *review

	r.store.mu.Lock()
	r.store.reviews = append([]*models.Review{&cp}, r.store.reviews...)
	r.store.mu.Unlock()
	return nil
}
