package database

import (
	"context"
)

// Database is the execute-and-return contract the engine needs from a
// driver. Connection lifecycle belongs to whoever constructed it.
type Database interface {
	ExecContext(ctx context.Context, query string, args ...any) (Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	PingContext(ctx context.Context) error
	Close() error
}

// Preparer is implemented by databases that support server-side prepared
// statements reusable across calls.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (Statement, error)
}

// Statement is a prepared statement. It must be safe for concurrent use.
type Statement interface {
	ExecContext(ctx context.Context, args ...any) (Result, error)
	QueryContext(ctx context.Context, args ...any) (Rows, error)
	Close() error
}

type Rows interface {
	Next() bool
	Columns() ([]string, error)
	// Values returns the current row in column order.
	Values() ([]any, error)
	Err() error
	Close() error
}

type Result interface {
	RowsAffected() (int64, error)
}
