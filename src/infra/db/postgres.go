package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"jokester/src/infra/config"
)

// healthTimeout bounds a single health ping.
const healthTimeout = 2 * time.Second

// Postgres owns the jokester connection pool.
type Postgres struct {
	Pool *pgxpool.Pool
	log  *slog.Logger
}

// New opens the pool described by cfg and pings it once before returning.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database dsn: %w", err)
	}

	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool for %s: %w", cfg.Name, err)
	}

	pg := &Postgres{Pool: pool, log: log}
	if err := pg.Health(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("database ready",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"max_conns", poolCfg.MaxConns,
	)
	return pg, nil
}

// Close releases every pooled connection.
func (p *Postgres) Close() {
	if p.Pool == nil {
		return
	}
	p.Pool.Close()
	p.log.Info("database pool closed")
}

// Health pings the database, giving up after healthTimeout.
func (p *Postgres) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
