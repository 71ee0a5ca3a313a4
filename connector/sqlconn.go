package connector

import (
	"context"
	"fmt"

	"github.com/Konsultn-Engineering/smartcrud/database"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/jmoiron/sqlx"
)

// SQLConnection is a Connection over a database/sql driver. Providers for
// drivers without a native pool build on it.
type SQLConnection struct {
	db      *sqlx.DB
	dialect dialect.Dialect
}

func NewSQLConnection(db *sqlx.DB, d dialect.Dialect) *SQLConnection {
	return &SQLConnection{db: db, dialect: d}
}

// OpenSQL opens driverName with dsn, applies pool settings and verifies the
// connection with a ping.
func OpenSQL(ctx context.Context, driverName, dsn string, pool PoolConfig, d dialect.Dialect) (*SQLConnection, error) {
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driverName, err)
	}
	ApplyPool(db, pool)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driverName, err)
	}
	return NewSQLConnection(db, d), nil
}

// ApplyPool copies non-zero pool settings onto db.
func ApplyPool(db *sqlx.DB, pool PoolConfig) {
	if pool.MaxOpen > 0 {
		db.SetMaxOpenConns(pool.MaxOpen)
	}
	if pool.MaxIdle > 0 {
		db.SetMaxIdleConns(pool.MaxIdle)
	}
	if pool.MaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.MaxLifetime)
	}
	if pool.MaxIdleTime > 0 {
		db.SetConnMaxIdleTime(pool.MaxIdleTime)
	}
}

func (c *SQLConnection) Database() database.Database {
	return database.NewSqlDatabase(c.db)
}

func (c *SQLConnection) Dialect() dialect.Dialect {
	return c.dialect
}

func (c *SQLConnection) Health(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

func (c *SQLConnection) Stats() ConnectionStats {
	s := c.db.Stats()
	return ConnectionStats{
		MaxOpen:         s.MaxOpenConnections,
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
		WaitCount:       s.WaitCount,
		WaitDuration:    s.WaitDuration,
	}
}

func (c *SQLConnection) Close() error {
	return c.db.Close()
}
