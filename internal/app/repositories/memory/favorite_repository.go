package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
)

// FavoriteRepository serves favorites from the fallback dataset. Held favorites keep a
// copy of their college.
type FavoriteRepository struct {
	store *Store
}

// FindByUser returns copies of the user's favorites in insertion order
func (r *FavoriteRepository) FindByUser(_ context.Context, userID string) ([]*models.Favorite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*models.Favorite{}
	for _, f := range r.store.favorites {
		if f.UserID == userID {
			result = append(result, f.Clone())
		}
	}
	return result, nil
}

// FindOne returns the favorite for the college and user
func (r *FavoriteRepository) FindOne(_ context.Context, collegeID, userID string) (*models.Favorite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if i := r.indexOf(collegeID, userID); i >= 0 {
		return r.store.favorites[i].Clone(), nil
	}
	return nil, repositories.ErrNotFound
}

// Create checks uniqueness and appends the favorite in one critical section
func (r *FavoriteRepository) Create(_ context.Context, favorite *models.Favorite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.indexOf(favorite.CollegeID, favorite.UserID) >= 0 {
		return repositories.ErrDuplicate
	}

	if favorite.ID == "" {
		favorite.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	favorite.CreatedAt = now
	favorite.UpdatedAt = now

	r.store.favorites = append(r.store.favorites, favorite.Clone())
	return nil
}

// DeleteByID removes the favorite with the given id
func (r *FavoriteRepository) DeleteByID(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, f := range r.store.favorites {
		if f.ID == id {
			r.removeAt(i)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// DeleteByCollege removes the user's favorite for the college
func (r *FavoriteRepository) DeleteByCollege(_ context.Context, collegeID, userID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexOf(collegeID, userID)
	if i < 0 {
		return repositories.ErrNotFound
	}
	r.removeAt(i)
	return nil
}

// indexOf must be called with mu held
func (r *FavoriteRepository) indexOf(collegeID, userID string) int {
	for i, f := range r.store.favorites {
		if f.CollegeID == collegeID && f.UserID == userID {
			return i
		}
	}
	return -1
}

// removeAt must be called with mu held for writing
func (r *FavoriteRepository) removeAt(i int) {
	r.store.favorites = slices.Delete(r.store.favorites, i, i+1)
}
