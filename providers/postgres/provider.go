package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/database"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultMaxConns    = 10
	defaultMaxLifetime = time.Hour
	defaultMaxIdleTime = 30 * time.Minute
)

type Provider struct{}

func init() {
	connector.Register("postgres", &Provider{})
}

// BuildDSN returns cfg.URL when set, otherwise a postgres:// URL built from
// the individual fields.
func (p *Provider) BuildDSN(cfg connector.Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return connector.FromConfig("postgres", cfg, 5432).
		WithPostgresDefaults().
		Param("sslmode", cfg.SSLMode).
		Params(cfg.Params).
		Build()
}

// PoolConfig parses the DSN for cfg and applies the pool settings, falling
// back to defaults for unset values.
func (p *Provider) PoolConfig(cfg connector.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(p.BuildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	pool := cfg.Pool
	if pool.MaxOpen <= 0 {
		pool.MaxOpen = defaultMaxConns
	}
	if pool.MaxLifetime == 0 {
		pool.MaxLifetime = defaultMaxLifetime
	}
	if pool.MaxIdleTime == 0 {
		pool.MaxIdleTime = defaultMaxIdleTime
	}

	poolCfg.MaxConns = int32(pool.MaxOpen)
	poolCfg.MinConns = int32(max(0, min(pool.MaxIdle, pool.MaxOpen)))
	poolCfg.MaxConnLifetime = pool.MaxLifetime
	poolCfg.MaxConnIdleTime = pool.MaxIdleTime
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	return poolCfg, nil
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	poolCfg, err := p.PoolConfig(cfg)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &connection{pool: pool}, nil
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewPostgresDialect()
}

type connection struct {
	pool *pgxpool.Pool
}

func (c *connection) Database() database.Database {
	return database.NewPgxDatabase(c.pool)
}

func (c *connection) Dialect() dialect.Dialect {
	return dialect.NewPostgresDialect()
}

func (c *connection) Health(ctx context.Context) error {
	return c.pool.Ping(ctx)
}

func (c *connection) Stats() connector.ConnectionStats {
	s := c.pool.Stat()
	return connector.ConnectionStats{
		MaxOpen:         int(s.MaxConns()),
		OpenConnections: int(s.TotalConns()),
		InUse:           int(s.AcquiredConns()),
		Idle:            int(s.IdleConns()),
		WaitCount:       s.EmptyAcquireCount(),
		WaitDuration:    s.AcquireDuration(),
	}
}

func (c *connection) Close() error {
	c.pool.Close()
	return nil
}
