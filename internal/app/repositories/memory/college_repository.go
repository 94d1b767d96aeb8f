package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
)

// CollegeRepository serves colleges from the fallback dataset
type CollegeRepository struct {
	store *Store
}

// Find filters and orders the held colleges with the shared query semantics
func (r *CollegeRepository) Find(_ context.Context, q models.CollegeQuery) ([]*models.College, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := q.Apply(r.store.colleges)
	result := make([]*models.College, 0, len(matched))
	for _, c := range matched {
		result = append(result, c.Clone())
	}
	return result, nil
}

// FindByID returns a copy of the college with the given id
func (r *CollegeRepository) FindByID(_ context.Context, id string) (*models.College, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.colleges {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindByIDs returns copies of the colleges that exist among ids
func (r *CollegeRepository) FindByIDs(_ context.Context, ids []string) (map[string]*models.College, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	found := make(map[string]*models.College, len(ids))
	for _, c := range r.store.colleges {
		if _, ok := wanted[c.ID]; ok {
			found[c.ID] = c.Clone()
		}
	}
	return found, nil
}

// Count returns the number of held colleges
func (r *CollegeRepository) Count(_ context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.colleges)), nil
}

// ReplaceAll swaps the held colleges for copies of colleges
func (r *CollegeRepository) ReplaceAll(_ context.Context, colleges []*models.College) error {
	replacement := make([]*models.College, 0, len(colleges))
	for _, c := range colleges {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		replacement = append(replacement, c.Clone())
	}

	r.store.mu.Lock()
	r.store.colleges = replacement
	r.store.mu.Unlock()
	return nil
}
