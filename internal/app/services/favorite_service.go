package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

// FavoriteService defines the favorite operations. An empty userID means models.DefaultUserID.
type FavoriteService interface {
	ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error)
	AddFavorite(ctx context.Context, collegeID, userID string) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, id string) error
	RemoveFavoriteByCollege(ctx context.Context, collegeID, userID string) error
}

// favoriteServiceImpl implements FavoriteService
type favoriteServiceImpl struct {
	resolver *Resolver
}

// NewFavoriteService creates a new favorite service instance
func NewFavoriteService(resolver *Resolver) FavoriteService {
	return &favoriteServiceImpl{resolver: resolver}
}

func normalizeUserID(userID string) string {
	if userID = strings.TrimSpace(userID); userID == "" {
		return models.DefaultUserID
	}
	return userID
}

// ListFavorites returns the user's favorites joined to their colleges. Favorites whose
// college no longer exists are left out. While the store holds no colleges, favorites are
// kept in the fallback dataset alongside the colleges it serves.
func (s *favoriteServiceImpl) ListFavorites(ctx context.Context, userID string) ([]*models.Favorite, error) {
	userID = normalizeUserID(userID)
	r := s.resolver

	favorites, err := s.listJoined(ctx, r.store, userID)
	if err != nil {
		if !r.storeFailed(entityFavorites, "list", err) {
			return nil, err
		}
		return s.listJoined(ctx, r.fallback, userID)
	}
	r.metrics.StoreUp(entityFavorites, true)

	if len(favorites) == 0 && r.collegesUnseeded(ctx, entityFavorites, "list") {
		return s.listJoined(ctx, r.fallback, userID)
	}
	return favorites, nil
}

func (s *favoriteServiceImpl) listJoined(ctx context.Context, repos *repositories.Repositories, userID string) ([]*models.Favorite, error) {
	favorites, err := repos.FavoriteRepository.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, f := range favorites {
		if f.College == nil {
			missing = append(missing, f.CollegeID)
		}
	}

	colleges := map[string]*models.College{}
	if len(missing) > 0 {
		if colleges, err = repos.CollegeRepository.FindByIDs(ctx, missing); err != nil {
			return nil, err
		}
	}

	joined := make([]*models.Favorite, 0, len(favorites))
	for _, f := range favorites {
		if f.College == nil {
			f.College = colleges[f.CollegeID]
		}
		if f.College == nil {
			s.resolver.logger.Debug().Str("favoriteID", f.ID).Str("collegeID", f.CollegeID).Msg("Skipping favorite of missing college")
			continue
		}
		joined = append(joined, f)
	}
	return joined, nil
}

// AddFavorite marks the college as a favorite of the user
func (s *favoriteServiceImpl) AddFavorite(ctx context.Context, collegeID, userID string) (*models.Favorite, error) {
	collegeID = strings.TrimSpace(collegeID)
	if collegeID == "" {
		return nil, apperrors.ErrCollegeIDRequired
	}
	userID = normalizeUserID(userID)
	r := s.resolver

	favorite, err := s.add(ctx, r.store, collegeID, userID)
	switch {
	case err == nil:
	case r.storeFailed(entityFavorites, "add", err):
		return s.add(ctx, r.fallback, collegeID, userID)
	case errors.Is(err, apperrors.ErrCollegeNotFound) && r.collegesUnseeded(ctx, entityFavorites, "add"):
		return s.add(ctx, r.fallback, collegeID, userID)
	default:
		return nil, err
	}
	r.metrics.StoreUp(entityFavorites, true)
	return favorite, nil
}

func (s *favoriteServiceImpl) add(ctx context.Context, repos *repositories.Repositories, collegeID, userID string) (*models.Favorite, error) {
	college, err := repos.CollegeRepository.FindByID(ctx, collegeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		return nil, err
	}

	_, err = repos.FavoriteRepository.FindOne(ctx, college.ID, userID)
	switch {
	case err == nil:
		return nil, apperrors.ErrFavoriteAlreadyExists
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, err
	}

	favorite := &models.Favorite{
		CollegeID: college.ID,
		UserID:    userID,
		College:   college,
	}
	// Concurrent adds can pass FindOne together; Create settles the race.
	if err := repos.FavoriteRepository.Create(ctx, favorite); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.ErrFavoriteAlreadyExists
		}
		return nil, err
	}
	return favorite, nil
}

// RemoveFavorite deletes a favorite by its id
func (s *favoriteServiceImpl) RemoveFavorite(ctx context.Context, id string) error {
	return s.remove(ctx, "remove", func(repos *repositories.Repositories) error {
		return repos.FavoriteRepository.DeleteByID(ctx, id)
	})
}

// RemoveFavoriteByCollege deletes the user's favorite for the college
func (s *favoriteServiceImpl) RemoveFavoriteByCollege(ctx context.Context, collegeID, userID string) error {
	userID = normalizeUserID(userID)
	return s.remove(ctx, "remove_by_college", func(repos *repositories.Repositories) error {
		return repos.FavoriteRepository.DeleteByCollege(ctx, collegeID, userID)
	})
}

func (s *favoriteServiceImpl) remove(ctx context.Context, operation string, del func(*repositories.Repositories) error) error {
	r := s.resolver

	err := del(r.store)
	switch {
	case err == nil:
		r.metrics.StoreUp(entityFavorites, true)
	case r.storeFailed(entityFavorites, operation, err):
		err = del(r.fallback)
	case errors.Is(err, repositories.ErrNotFound) && r.collegesUnseeded(ctx, entityFavorites, operation):
		err = del(r.fallback)
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.ErrFavoriteNotFound
	}
	return err
}
