// Package bootstrap builds the application from its configuration.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/collegehub/internal/app/controllers"
	appMigrations "github.com/yigit/collegehub/internal/app/migrations"
	appRepos "github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/app/repositories/memory"
	"github.com/yigit/collegehub/internal/app/repositories/mongodb"
	"github.com/yigit/collegehub/internal/app/repositories/postgres"
	appRoutes "github.com/yigit/collegehub/internal/app/routes"
	appServices "github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/config"
	"github.com/yigit/collegehub/internal/db"
	appMiddleware "github.com/yigit/collegehub/internal/middleware"
	"github.com/yigit/collegehub/internal/pkg/logger"
	"github.com/yigit/collegehub/internal/pkg/metrics"
	"github.com/yigit/collegehub/internal/seed"
)

// ConfigPathEnv overrides the default configuration file location
const ConfigPathEnv = "CONFIG_PATH"

// Store is an opened persistent store
type Store struct {
	Repos *appRepos.Repositories
	close func()
}

// Close releases the store's connections
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services           *appServices.Services
	CollegeController  *appControllers.CollegeController
	ReviewController   *appControllers.ReviewController
	FavoriteController *appControllers.FavoriteController
	Metrics            *metrics.Metrics
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv(ConfigPathEnv)
	if configPath == "" {
		configPath = filepath.Join("configs", "config.yaml")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured store and prepares its schema. An unreachable store
// is not an error: the service starts and answers from the fallback dataset.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	var store *Store

	switch cfg.Database.Driver {
	case config.DriverMongo:
		lgr.Info().Msg("Connecting to MongoDB...")
		mdb, err := db.NewMongoDB(cfg)
		if err != nil {
			return nil, err
		}

		indexCtx, cancel := context.WithTimeout(ctx, cfg.Database.QueryTimeout)
		if err := mongodb.EnsureIndexes(indexCtx, mdb.Database); err != nil {
			lgr.Warn().Err(err).Msg("Could not ensure MongoDB indexes")
		}
		cancel()

		store = &Store{
			Repos: mongodb.NewRepositories(mdb.Database, cfg.Database.QueryTimeout),
			close: mdb.Close,
		}

	case config.DriverPostgres:
		lgr.Info().Msg("Connecting to PostgreSQL...")
		pg, err := db.NewPostgresDB(cfg)
		if err != nil {
			return nil, err
		}

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(pg.Pool, lgr)
		if err := migrator.Migrate(ctx, appMigrations.Files()); err != nil {
			lgr.Warn().Err(err).Msg("Database migrations not applied")
		}

		store = &Store{
			Repos: postgres.NewRepositories(pg, cfg.Database.QueryTimeout),
			close: pg.Close,
		}

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	if cfg.Database.SeedOnStartup {
		if _, err := seed.CreateDefaultData(ctx, store.Repos.CollegeRepository, lgr); err != nil {
			lgr.Warn().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return store, nil
}

// BuildDependencies initializes services and controllers on store and a fresh fallback dataset.
func BuildDependencies(cfg *config.Config, store *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
	}

	fallback := memory.NewDefaultStore().Repositories()
	deps.Services = appServices.NewServices(store, fallback, cfg.Fallback.Mode, deps.Metrics, lgr)

	deps.CollegeController = appControllers.NewCollegeController(deps.Services.CollegeService)
	deps.ReviewController = appControllers.NewReviewController(deps.Services.ReviewService)
	deps.FavoriteController = appControllers.NewFavoriteController(deps.Services.FavoriteService)

	return deps
}

// SetupRouter creates the gin engine with middleware and every route.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(deps.Metrics),
		appMiddleware.ErrorDetails(cfg.Server.ExposeErrorDetails),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.CORSOrigins),
	)
	router.NoRoute(appMiddleware.NoRoute)

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		College:  deps.CollegeController,
		Review:   deps.ReviewController,
		Favorite: deps.FavoriteController,
	})
	appRoutes.SetupSwagger(router)
	if deps.Metrics != nil {
		appRoutes.SetupMetrics(router, cfg.Metrics.Path, deps.Metrics)
	}

	return router
}
