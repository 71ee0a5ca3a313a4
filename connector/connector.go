package connector

import (
	"context"
	"time"

	"github.com/Konsultn-Engineering/smartcrud/database"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
)

// Connection is an opened database handle.
type Connection interface {
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

type Connector interface {
	Connect(ctx context.Context) (Connection, error)
	Config() Config
}

// ConnectionStats is a point-in-time view of a connection pool.
type ConnectionStats struct {
	MaxOpen         int
	OpenConnections int
	InUse           int
	Idle            int
	WaitCount       int64
	WaitDuration    time.Duration
}
