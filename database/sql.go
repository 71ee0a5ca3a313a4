package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SqlDatabase implements Database for database/sql drivers through sqlx.
type SqlDatabase struct {
	db *sqlx.DB
}

// NewSqlDatabase creates a new SqlDatabase.
func NewSqlDatabase(db *sqlx.DB) *SqlDatabase {
	return &SqlDatabase{db: db}
}

// DB returns the wrapped handle.
func (s *SqlDatabase) DB() *sqlx.DB { return s.db }

// ExecContext executes a statement without returning rows.
func (s *SqlDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (s *SqlDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

// PrepareContext prepares a statement reusable across calls.
func (s *SqlDatabase) PrepareContext(ctx context.Context, query string) (Statement, error) {
	stmt, err := s.db.PreparexContext(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SqlStatement{stmt: stmt}, nil
}

// PingContext verifies the connection to the database is alive.
func (s *SqlDatabase) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SqlDatabase) Close() error { return s.db.Close() }

// SqlStatement implements Statement for *sqlx.Stmt.
type SqlStatement struct {
	stmt *sqlx.Stmt
}

func (s *SqlStatement) ExecContext(ctx context.Context, args ...any) (Result, error) {
	return s.stmt.ExecContext(ctx, args...)
}

func (s *SqlStatement) QueryContext(ctx context.Context, args ...any) (Rows, error) {
	rows, err := s.stmt.QueryxContext(ctx, args...)
	if err != nil {
		return nil, err
	}
	return &SqlRows{rows: rows}, nil
}

func (s *SqlStatement) Close() error { return s.stmt.Close() }

// SqlRows implements Rows for *sqlx.Rows.
type SqlRows struct {
	rows *sqlx.Rows
}

// Next prepares the next result row for reading.
func (s *SqlRows) Next() bool { return s.rows.Next() }

// Columns returns the column names.
func (s *SqlRows) Columns() ([]string, error) { return s.rows.Columns() }

// Values returns the values for the current row.
func (s *SqlRows) Values() ([]any, error) { return s.rows.SliceScan() }

// Err returns the error encountered during iteration, if any.
func (s *SqlRows) Err() error { return s.rows.Err() }

// Close closes the rows iterator.
func (s *SqlRows) Close() error { return s.rows.Close() }

var (
	_ Database = (*SqlDatabase)(nil)
	_ Preparer = (*SqlDatabase)(nil)
)
