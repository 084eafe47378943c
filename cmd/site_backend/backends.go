package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/SscSPs/site_claims_app/internal/platform/config"
	"github.com/SscSPs/site_claims_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/site_claims_app/internal/repositories/kv"
	"github.com/SscSPs/site_claims_app/internal/repositories/memory"
	"github.com/SscSPs/site_claims_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// backends holds the opened storage handles so they can be closed on exit.
type backends struct {
	repos  portsrepo.RepositoryProvider
	pool   *pgxpool.Pool
	sqlite *sql.DB
	redis  *goredis.Client
	logger *slog.Logger
}

func openBackends(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*backends, error) {
	b := &backends{logger: logger}

	store, err := b.openKV(ctx, cfg)
	if err != nil {
		b.Close()
		return nil, err
	}

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		b.pool = pool
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		applied, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		if err != nil {
			b.Close()
			return nil, err
		}
		if applied {
			logger.Info("Database migrations applied successfully.")
		} else {
			logger.Info("No new migrations to apply.")
		}
		b.repos = pgsql.NewRepositoryProvider(pool, store)
	default:
		repos, err := memory.NewRepositoryProvider(ctx, store)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to initialize in-memory repositories: %w", err)
		}
		b.repos = repos
	}
	return b, nil
}

// openKV opens the key-value store that holds the session identity (and,
// with in-memory repositories, the user list).
func (b *backends) openKV(ctx context.Context, cfg *config.Config) (portsrepo.KeyValueStore, error) {
	switch cfg.KVDriver {
	case config.KVSQLite:
		conn, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		b.sqlite = conn
		store, err := kv.NewSQLiteStore(ctx, conn)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite key-value store: %w", err)
		}
		b.logger.Info("Using SQLite key-value store", slog.String("path", cfg.SQLitePath))
		return store, nil
	case config.KVRedis:
		rdb, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		b.redis = rdb
		b.logger.Info("Using Redis key-value store", slog.String("addr", cfg.RedisAddr))
		return kv.NewRedisStore(rdb), nil
	default:
		return kv.NewMemoryStore(), nil
	}
}

// Close releases every opened handle.
func (b *backends) Close() {
	if b.pool != nil {
		database.ClosePgxPool(b.pool)
	}
	if b.sqlite != nil {
		if err := b.sqlite.Close(); err != nil {
			b.logger.Error("Error closing sqlite database", slog.String("error", err.Error()))
		}
	}
	if b.redis != nil {
		if err := b.redis.Close(); err != nil {
			b.logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
}

// newLoginLimiter builds the login rate limiter. Counters live in Redis when
// a Redis client is open so that several instances share them.
func newLoginLimiter(cfg *config.Config, rdb *goredis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE_LIMIT %q: %w", cfg.LoginRateLimit, err)
	}

	if rdb == nil {
		return limiter.New(limitermemory.NewStore(), rate), nil
	}
	store, err := limiterredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix:   "site_claims_login",
		MaxRetry: 3,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
	}
	return limiter.New(store, rate), nil
}
