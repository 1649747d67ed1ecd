// Package bootstrap wires the runtime dependencies shared by the server
// and seeder commands.
package bootstrap

import (
	"fmt"

	"meapi/internal/cache"
	"meapi/internal/config"
	"meapi/internal/database"
	"meapi/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to the database and Redis and optionally runs the
// built-in idempotent seed. The Redis client is nil when the store is
// unreachable; callers degrade gracefully.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedBuiltIns {
		if err := seed.Run(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in content: %w", err)
		}
	}

	return db, r, nil
}
