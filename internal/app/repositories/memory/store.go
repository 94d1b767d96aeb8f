// Package memory holds the in-process fallback dataset. It implements the same
// repository interfaces as the persistent stores, so the services run identical
// operations against either.
package memory

import (
	"sync"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
)

// StoreName identifies the fallback dataset in logs and metrics
const StoreName = "fallback"

// Store is the fallback dataset. Every mutation happens under mu, so check-then-write
// sequences such as the favorite uniqueness rule are atomic.
type Store struct {
	mu        sync.RWMutex
	colleges  []*models.College
	reviews   []*models.Review
	favorites []*models.Favorite
}

// NewStore creates a store holding copies of the given colleges and reviews and no favorites
func NewStore(colleges []*models.College, reviews []*models.Review) *Store {
	s := &Store{
		colleges:  make([]*models.College, 0, len(colleges)),
		reviews:   make([]*models.Review, 0, len(reviews)),
		favorites: []*models.Favorite{},
	}
	for _, c := range colleges {
		s.colleges = append(s.colleges, c.Clone())
	}
	for _, r := range reviews {
		cp := *r
		s.reviews = append(s.reviews, &cp)
	}
	return s
}

// NewDefaultStore creates a store with the built-in seed colleges and reviews
func NewDefaultStore() *Store {
	return NewStore(DefaultColleges(), DefaultReviews())
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Name:               StoreName,
		CollegeRepository:  &CollegeRepository{store: s},
		ReviewRepository:   &ReviewRepository{store: s},
		FavoriteRepository: &FavoriteRepository{store: s},
	}
}
