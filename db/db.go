package db

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// pool is a singleton pgx pool instance.
var (
	pool     *pgxpool.Pool
	poolOnce sync.Once
)

// InitPool initializes and returns the shared Postgres pool from the
// DATABASE_URL env var.
func InitPool(ctx context.Context) (*pgxpool.Pool, error) {
	var err error
	poolOnce.Do(func() {
		url := os.Getenv("DATABASE_URL")
		if url == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(url)
		if parseErr != nil {
			err = fmt.Errorf("parsing DATABASE_URL: %w", parseErr)
			return
		}
		cfg.MaxConns = 5
		cfg.HealthCheckPeriod = 30 * time.Second

		pool, err = pgxpool.NewWithConfig(ctx, cfg)
	})
	return pool, err
}

// ClosePool closes the shared pool.
func ClosePool() {
	if pool != nil {
		pool.Close()
	}
}
