package postgres

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegehub/internal/app/migrations"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/app/repositories/memory"
	"github.com/yigit/collegehub/internal/db"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCollegeSelect(t *testing.T) {
	sb := statementBuilder()

	t.Run("no filters keeps insertion order", func(t *testing.T) {
		sql, args, err := collegeSelect(sb, models.CollegeQuery{}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id::text, name, location, course, fee FROM colleges ORDER BY position ASC", sql)
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		sql, args, err := collegeSelect(sb, models.CollegeQuery{
			Location: "Hyderabad",
			Course:   "MBA",
			MinFee:   int64Ptr(100000),
			MaxFee:   int64Ptr(150000),
			Search:   "abc",
			SortBy:   models.SortFeeDesc,
		}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id::text, name, location, course, fee FROM colleges "+
			"WHERE location = $1 AND course = $2 AND fee >= $3 AND fee <= $4 AND name ILIKE $5 "+
			"ORDER BY fee DESC, position ASC", sql)
		assert.Equal(t, []interface{}{"Hyderabad", "MBA", int64(100000), int64(150000), "%abc%"}, args)
	})

	t.Run("search wildcards are literal", func(t *testing.T) {
		_, args, err := collegeSelect(sb, models.CollegeQuery{Search: `50%_a\b`}).ToSql()
		require.NoError(t, err)
		assert.Equal(t, []interface{}{`%50\%\_a\\b%`}, args)
	})
}

func TestParseID(t *testing.T) {
	_, err := parseID("1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	id, err := parseID("3F2504E0-4F89-11D3-9A0C-0305E82C3301")
	require.NoError(t, err)
	assert.Equal(t, "3f2504e0-4f89-11d3-9a0c-0305e82c3301", id)
}

// openTestDB connects to TEST_DATABASE_URL and resets the tables
func openTestDB(t *testing.T) *db.PostgresDB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, migrations.NewMigrator(pool, zerolog.Nop()).Migrate(ctx, migrations.Files()))
	_, err = pool.Exec(ctx, "TRUNCATE colleges, reviews, favorites")
	require.NoError(t, err)

	return &db.PostgresDB{Pool: pool}
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pg := openTestDB(t)
	repos := NewRepositories(pg, 5*time.Second)
	ctx := context.Background()

	seed := memory.DefaultColleges()
	require.NoError(t, repos.CollegeRepository.ReplaceAll(ctx, seed))

	t.Run("fee range", func(t *testing.T) {
		colleges, err := repos.CollegeRepository.Find(ctx, models.CollegeQuery{
			MinFee: int64Ptr(100000),
			MaxFee: int64Ptr(150000),
		})
		require.NoError(t, err)
		require.Len(t, colleges, 3)
		assert.Equal(t, "ABC Engineering College", colleges[0].Name)
	})

	t.Run("store and fallback agree", func(t *testing.T) {
		fallback := memory.NewStore(memory.DefaultColleges(), nil).Repositories()
		queries := []models.CollegeQuery{
			{},
			{Location: "Hyderabad", SortBy: models.SortFeeDesc},
			{Search: "college", SortBy: models.SortFeeAsc},
			{Course: "MBA", MaxFee: int64Ptr(200000)},
		}
		for _, q := range queries {
			fromStore, err := repos.CollegeRepository.Find(ctx, q)
			require.NoError(t, err)
			fromFallback, err := fallback.CollegeRepository.Find(ctx, q)
			require.NoError(t, err)

			require.Len(t, fromStore, len(fromFallback))
			for i := range fromStore {
				assert.Equal(t, fromFallback[i].Name, fromStore[i].Name)
			}
		}
	})

	t.Run("favorites are unique per college and user", func(t *testing.T) {
		collegeID := seed[0].ID

		var wg sync.WaitGroup
		results := make([]error, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = repos.FavoriteRepository.Create(ctx, &models.Favorite{CollegeID: collegeID, UserID: "u1"})
			}(i)
		}
		wg.Wait()

		created := 0
		for _, err := range results {
			if err == nil {
				created++
				continue
			}
			assert.ErrorIs(t, err, repositories.ErrDuplicate)
		}
		assert.Equal(t, 1, created)

		favorites, err := repos.FavoriteRepository.FindByUser(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, collegeID, favorites[0].CollegeID)

		require.NoError(t, repos.FavoriteRepository.DeleteByCollege(ctx, collegeID, "u1"))
		assert.ErrorIs(t, repos.FavoriteRepository.DeleteByCollege(ctx, collegeID, "u1"), repositories.ErrNotFound)
	})

	t.Run("reviews newest first", func(t *testing.T) {
		first := &models.Review{CollegeName: "A", Rating: 4, Comment: "ok"}
		require.NoError(t, repos.ReviewRepository.Create(ctx, first))
		time.Sleep(5 * time.Millisecond)
		second := &models.Review{CollegeName: "B", Rating: 5, Comment: "great"}
		require.NoError(t, repos.ReviewRepository.Create(ctx, second))

		reviews, err := repos.ReviewRepository.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, reviews, 2)
		assert.Equal(t, second.ID, reviews[0].ID)
	})
}
