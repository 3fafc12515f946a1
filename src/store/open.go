package store

import (
	"context"

	"staffline-agent/src/config"
)

// Open returns the store selected by cfg: Postgres when a DSN is set, then
// Redis, otherwise an in-memory store. The Postgres schema is migrated on open.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch {
	case cfg.PostgresDSN != "":
		pg, err := NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.Migrate(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	case cfg.RedisURL != "":
		return OpenRedis(ctx, cfg.RedisURL, cfg.RedisTTL)
	default:
		return NewMemoryStore(), nil
	}
}
