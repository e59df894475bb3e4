// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	groceryapp "github.com/platewise/v1/internal/application/grocery"
	"github.com/platewise/v1/internal/application/planner"
	"github.com/platewise/v1/internal/infrastructure/ai/ollama"
	"github.com/platewise/v1/internal/infrastructure/ai/openai"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/migrations"
	"github.com/platewise/v1/internal/infrastructure/persistence/postgres"
	redisrepo "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/healthcheck"
	"github.com/platewise/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	MigrationModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
	func(log *zap.Logger) *zap.SugaredLogger {
		return log.Sugar()
	},
)

// DatabaseModule provides the PostgreSQL connection pool
var DatabaseModule = fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
		pool, err := postgres.NewPool(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				pool.Close()
				return nil
			},
		})
		return pool, nil
	},
)

// MigrationModule applies pending schema migrations on startup
var MigrationModule = fx.Invoke(
	func(cfg *config.Config, pool *pgxpool.Pool, log *zap.Logger) error {
		if !cfg.Database.AutoMigrate {
			return nil
		}

		db := stdlib.OpenDBFromPool(pool)
		migrator, err := migrations.New(db, log)
		if err != nil {
			return err
		}
		if err := migrator.Up(); err != nil {
			return err
		}
		return db.Close()
	},
)

// CacheModule provides the cache repository, falling back to an
// in-process cache when Redis is disabled
var CacheModule = fx.Provide(
	func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*goredis.Client, error) {
		if !cfg.Redis.Enabled {
			return nil, nil
		}

		client, err := redisrepo.NewClient(context.Background(), cfg, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
		return client, nil
	},
	func(client *goredis.Client, log *zap.Logger) outbound.CacheRepository {
		if client == nil {
			log.Info("Redis disabled, using in-memory cache")
			return memory.NewCacheRepository()
		}
		return redisrepo.NewCacheRepository(client, log)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	postgres.NewCatalogRepository,
	postgres.NewMealRepository,
	postgres.NewHouseholdRepository,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.TextGenerator {
		if cfg.AI.Provider == "ollama" {
			return ollama.NewClient(cfg.AI, log)
		}
		return openai.NewClient(cfg.AI, log)
	},
	fx.Annotate(
		planner.NewService,
		fx.As(new(inbound.PlannerService)),
	),
	fx.Annotate(
		groceryapp.NewService,
		fx.As(new(inbound.GroceryService)),
	),
)

// HealthModule provides health checks over the core dependencies
var HealthModule = fx.Provide(
	func(cfg *config.Config, pool *pgxpool.Pool, redisClient *goredis.Client, log *zap.Logger) *healthcheck.HealthCheck {
		h := healthcheck.New(cfg.App.Version, log)
		h.Register("database", healthcheck.NewDatabaseChecker(pool))
		if redisClient != nil {
			h.Register("redis", healthcheck.NewRedisChecker(redisClient))
		}
		return h
	},
)

// HTTPModule provides the API server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule starts and stops the HTTP server with the app
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting application",
				zap.String("name", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
