package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/app/repositories/memory"
	"github.com/yigit/collegehub/internal/config"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/metrics"
)

var errDown = fmt.Errorf("%w: connection refused", apperrors.ErrStoreUnavailable)

type downColleges struct{}

func (downColleges) Find(context.Context, models.CollegeQuery) ([]*models.College, error) {
	return nil, errDown
}
func (downColleges) FindByID(context.Context, string) (*models.College, error) { return nil, errDown }
func (downColleges) FindByIDs(context.Context, []string) (map[string]*models.College, error) {
	return nil, errDown
}
func (downColleges) Count(context.Context) (int64, error) { return 0, errDown }
func (downColleges) ReplaceAll(context.Context, []*models.College) error { return errDown }

type downReviews struct{}

func (downReviews) FindAll(context.Context) ([]*models.Review, error) { return nil, errDown }
func (downReviews) Count(context.Context) (int64, error) { return 0, errDown }
func (downReviews) Create(context.Context, *models.Review) error { return errDown }

type downFavorites struct{}

func (downFavorites) FindByUser(context.Context, string) ([]*models.Favorite, error) {
	return nil, errDown
}
func (downFavorites) FindOne(context.Context, string, string) (*models.Favorite, error) {
	return nil, errDown
}
func (downFavorites) Create(context.Context, *models.Favorite) error { return errDown }
func (downFavorites) DeleteByID(context.Context, string) error { return errDown }
func (downFavorites) DeleteByCollege(context.Context, string, string) error { return errDown }

func downStore() *repositories.Repositories {
	return &repositories.Repositories{
		Name:               "down",
		CollegeRepository:  downColleges{},
		ReviewRepository:   downReviews{},
		FavoriteRepository: downFavorites{},
	}
}

// detachedFavorites forgets the college copy, like the persistent stores do
type detachedFavorites struct {
	repositories.FavoriteRepository
}

func (d detachedFavorites) FindByUser(ctx context.Context, userID string) ([]*models.Favorite, error) {
	favorites, err := d.FavoriteRepository.FindByUser(ctx, userID)
	for _, f := range favorites {
		f.College = nil
	}
	return favorites, err
}

func healthyStore(colleges []*models.College, reviews []*models.Review) *repositories.Repositories {
	repos := memory.NewStore(colleges, reviews).Repositories()
	repos.Name = "healthy"
	repos.FavoriteRepository = detachedFavorites{repos.FavoriteRepository}
	return repos
}

func newTestServices(store *repositories.Repositories, mode string) (*Services, *metrics.Metrics) {
	m := metrics.New()
	return NewServices(store, memory.NewDefaultStore().Repositories(), mode, m, zerolog.Nop()), m
}

func names(colleges []*models.College) []string {
	out := make([]string, 0, len(colleges))
	for _, c := range colleges {
		out = append(out, c.Name)
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int { return &v }

func TestListCollegesFallsBackOnStoreFailure(t *testing.T) {
	svc, m := newTestServices(downStore(), config.FallbackStrict)

	colleges, err := svc.CollegeService.ListColleges(context.Background(), models.CollegeQuery{
		MinFee: int64Ptr(100000),
		MaxFee: int64Ptr(150000),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC Engineering College", "XYZ Institute of Technology", "Sunrise Business School"}, names(colleges))

	count, err := testutil.GatherAndCount(m.Registry(), "college_directory_fallback_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestListCollegesEmptyResult(t *testing.T) {
	pune := []*models.College{{ID: "p1", Name: "Pune College", Location: "Pune", Course: "MBA", Fee: 90000}}
	q := models.CollegeQuery{Location: "Hyderabad"}

	t.Run("strict keeps an empty answer from a seeded store", func(t *testing.T) {
		svc, _ := newTestServices(healthyStore(pune, nil), config.FallbackStrict)
		colleges, err := svc.CollegeService.ListColleges(context.Background(), q)
		require.NoError(t, err)
		assert.Empty(t, colleges)
	})

	t.Run("strict falls back for an unseeded store", func(t *testing.T) {
		svc, _ := newTestServices(healthyStore(nil, nil), config.FallbackStrict)
		colleges, err := svc.CollegeService.ListColleges(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, []string{"ABC Engineering College", "Greenfield Medical College"}, names(colleges))
	})

	t.Run("legacy falls back on any empty answer", func(t *testing.T) {
		svc, _ := newTestServices(healthyStore(pune, nil), config.FallbackLegacy)
		colleges, err := svc.CollegeService.ListColleges(context.Background(), q)
		require.NoError(t, err)
		assert.Len(t, colleges, 2)
	})
}

func TestListCollegesSearchAndSort(t *testing.T) {
	store := healthyStore(append(memory.DefaultColleges(), &models.College{ID: "5", Name: "abc inst", Location: "Pune", Fee: 1}), nil)
	svc, _ := newTestServices(store, config.FallbackStrict)

	colleges, err := svc.CollegeService.ListColleges(context.Background(), models.CollegeQuery{
		Search: "abc",
		SortBy: models.SortFeeDesc,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC Engineering College", "abc inst"}, names(colleges))
}

func TestGetCollege(t *testing.T) {
	ctx := context.Background()

	t.Run("store hit", func(t *testing.T) {
		svc, _ := newTestServices(healthyStore(memory.DefaultColleges(), nil), config.FallbackStrict)
		college, err := svc.CollegeService.GetCollege(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Sunrise Business School", college.Name)
	})

	t.Run("miss in a seeded store", func(t *testing.T) {
		pune := []*models.College{{ID: "p1", Name: "Pune College"}}
		svc, _ := newTestServices(healthyStore(pune, nil), config.FallbackStrict)
		_, err := svc.CollegeService.GetCollege(ctx, "1")
		assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
	})

	t.Run("store down", func(t *testing.T) {
		svc, _ := newTestServices(downStore(), config.FallbackStrict)
		college, err := svc.CollegeService.GetCollege(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "ABC Engineering College", college.Name)

		_, err = svc.CollegeService.GetCollege(ctx, "99")
		assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
	})
}

func TestCreateReviewValidation(t *testing.T) {
	svc, _ := newTestServices(healthyStore(nil, nil), config.FallbackStrict)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   CreateReviewInput
		wantErr error
	}{
		{"rating zero", CreateReviewInput{CollegeName: "A", Rating: intPtr(0), Comment: "c"}, apperrors.ErrReviewRatingRange},
		{"rating six", CreateReviewInput{CollegeName: "A", Rating: intPtr(6), Comment: "c"}, apperrors.ErrReviewRatingRange},
		{"rating missing", CreateReviewInput{CollegeName: "A", Comment: "c"}, apperrors.ErrReviewFieldsRequired},
		{"blank name", CreateReviewInput{CollegeName: "  ", Rating: intPtr(3), Comment: "c"}, apperrors.ErrReviewFieldsRequired},
		{"missing comment", CreateReviewInput{CollegeName: "A", Rating: intPtr(3)}, apperrors.ErrReviewFieldsRequired},
		{"rating one", CreateReviewInput{CollegeName: "A", Rating: intPtr(1), Comment: "c"}, nil},
		{"rating five", CreateReviewInput{CollegeName: "A", Rating: intPtr(5), Comment: "c"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := svc.ReviewService.CreateReview(ctx, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, review.ID)
			assert.False(t, review.CreatedAt.IsZero())
		})
	}
}

func TestCreateReviewWhileStoreIsDown(t *testing.T) {
	svc, _ := newTestServices(downStore(), config.FallbackStrict)
	ctx := context.Background()

	review, err := svc.ReviewService.CreateReview(ctx, CreateReviewInput{
		CollegeName: " New College ",
		Rating:      intPtr(4),
		Comment:     "Nice campus",
	})
	require.NoError(t, err)
	assert.Equal(t, "New College", review.CollegeName)
	assert.NotEmpty(t, review.ID)

	reviews, err := svc.ReviewService.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, len(memory.DefaultReviews())+1)
	assert.Equal(t, review.ID, reviews[0].ID)
}

func TestListReviewsFromSeededStore(t *testing.T) {
	stored := []*models.Review{{ID: "x", CollegeName: "Only", Rating: 2, Comment: "meh"}}
	svc, _ := newTestServices(healthyStore(nil, stored), config.FallbackStrict)

	reviews, err := svc.ReviewService.ListReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "x", reviews[0].ID)
}

func TestFavoriteLifecycle(t *testing.T) {
	svc, _ := newTestServices(healthyStore(memory.DefaultColleges(), nil), config.FallbackStrict)
	favorites := svc.FavoriteService
	ctx := context.Background()

	_, err := favorites.AddFavorite(ctx, "", "")
	assert.ErrorIs(t, err, apperrors.ErrCollegeIDRequired)

	_, err = favorites.AddFavorite(ctx, "404", "")
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)
	list, err := favorites.ListFavorites(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := favorites.AddFavorite(ctx, "2", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUserID, created.UserID)
	require.NotNil(t, created.College)
	assert.Equal(t, "XYZ Institute of Technology", created.College.Name)

	_, err = favorites.AddFavorite(ctx, "2", models.DefaultUserID)
	assert.ErrorIs(t, err, apperrors.ErrFavoriteAlreadyExists)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	list, err = favorites.ListFavorites(ctx, models.DefaultUserID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "XYZ Institute of Technology", list[0].College.Name)

	other, err := favorites.ListFavorites(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, other)

	assert.ErrorIs(t, favorites.RemoveFavorite(ctx, "missing"), apperrors.ErrFavoriteNotFound)
	require.NoError(t, favorites.RemoveFavorite(ctx, created.ID))
	assert.ErrorIs(t, favorites.RemoveFavorite(ctx, created.ID), apperrors.ErrFavoriteNotFound)

	list, err = favorites.ListFavorites(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemoveFavoriteByCollege(t *testing.T) {
	svc, _ := newTestServices(healthyStore(memory.DefaultColleges(), nil), config.FallbackStrict)
	ctx := context.Background()

	_, err := svc.FavoriteService.AddFavorite(ctx, "1", "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.FavoriteService.RemoveFavoriteByCollege(ctx, "1", ""), apperrors.ErrFavoriteNotFound)
	require.NoError(t, svc.FavoriteService.RemoveFavoriteByCollege(ctx, "1", "u1"))
	assert.ErrorIs(t, svc.FavoriteService.RemoveFavoriteByCollege(ctx, "1", "u1"), apperrors.ErrFavoriteNotFound)
}

func TestListFavoritesDropsVanishedColleges(t *testing.T) {
	store := healthyStore(memory.DefaultColleges(), nil)
	svc, _ := newTestServices(store, config.FallbackStrict)
	ctx := context.Background()

	_, err := svc.FavoriteService.AddFavorite(ctx, "1", "")
	require.NoError(t, err)
	_, err = svc.FavoriteService.AddFavorite(ctx, "4", "")
	require.NoError(t, err)

	// Reseeding assigns fresh ids, so both favorites now point nowhere.
	require.NoError(t, store.CollegeRepository.ReplaceAll(ctx, []*models.College{
		{Name: "ABC Engineering College", Location: "Hyderabad", Course: "Computer Science", Fee: 120000},
	}))

	list, err := svc.FavoriteService.ListFavorites(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFavoritesFollowFallbackCollegesWhileStoreIsUnseeded(t *testing.T) {
	store := healthyStore(nil, nil)
	svc, m := newTestServices(store, config.FallbackStrict)
	ctx := context.Background()

	colleges, err := svc.CollegeService.ListColleges(ctx, models.CollegeQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, colleges)

	favorite, err := svc.FavoriteService.AddFavorite(ctx, colleges[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, colleges[0].Name, favorite.College.Name)

	_, err = svc.FavoriteService.AddFavorite(ctx, colleges[0].ID, "")
	assert.ErrorIs(t, err, apperrors.ErrFavoriteAlreadyExists)
	_, err = svc.FavoriteService.AddFavorite(ctx, "404", "")
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)

	list, err := svc.FavoriteService.ListFavorites(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, favorite.ID, list[0].ID)

	stored, err := store.FavoriteRepository.FindByUser(ctx, models.DefaultUserID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	require.NoError(t, svc.FavoriteService.RemoveFavorite(ctx, favorite.ID))
	assert.ErrorIs(t, svc.FavoriteService.RemoveFavorite(ctx, favorite.ID), apperrors.ErrFavoriteNotFound)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `college_directory_fallback_total{entity="favorites",operation="add",reason="empty_store"}`)
}

func TestFavoritesWhileStoreIsDown(t *testing.T) {
	svc, _ := newTestServices(downStore(), config.FallbackStrict)
	ctx := context.Background()

	_, err := svc.FavoriteService.AddFavorite(ctx, "404", "")
	assert.ErrorIs(t, err, apperrors.ErrCollegeNotFound)

	favorite, err := svc.FavoriteService.AddFavorite(ctx, "3", "")
	require.NoError(t, err)
	assert.Equal(t, "Sunrise Business School", favorite.College.Name)

	_, err = svc.FavoriteService.AddFavorite(ctx, "3", "")
	assert.ErrorIs(t, err, apperrors.ErrFavoriteAlreadyExists)

	list, err := svc.FavoriteService.ListFavorites(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, favorite.ID, list[0].ID)

	require.NoError(t, svc.FavoriteService.RemoveFavoriteByCollege(ctx, "3", ""))
	assert.ErrorIs(t, svc.FavoriteService.RemoveFavorite(ctx, favorite.ID), apperrors.ErrFavoriteNotFound)
}

func TestConcurrentAddFavoriteOnFallback(t *testing.T) {
	svc, _ := newTestServices(downStore(), config.FallbackStrict)
	ctx := context.Background()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.FavoriteService.AddFavorite(ctx, "1", "")
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, apperrors.ErrFavoriteAlreadyExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	list, err := svc.FavoriteService.ListFavorites(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
