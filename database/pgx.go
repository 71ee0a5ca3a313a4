package database

import (
	"context"
	"database/sql/driver"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDatabase implements Database over a pgx pool. pgx prepares and caches
// statements per connection itself, so it is not a Preparer.
type PgxDatabase struct {
	pool *pgxpool.Pool
}

func NewPgxDatabase(pool *pgxpool.Pool) *PgxDatabase {
	return &PgxDatabase{pool: pool}
}

// Pool returns the underlying pool.
func (p *PgxDatabase) Pool() *pgxpool.Pool { return p.pool }

func (p *PgxDatabase) ExecContext(ctx context.Context, query string, args ...any) (Result, error) {
	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgxResult(tag), nil
}

func (p *PgxDatabase) QueryContext(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &PgxRows{rows: rows}, nil
}

func (p *PgxDatabase) PingContext(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *PgxDatabase) Close() error {
	p.pool.Close()
	return nil
}

// PgxRows adapts pgx.Rows. Column names come from the field descriptions of
// the first result and keep server order.
type PgxRows struct {
	rows    pgx.Rows
	columns []string
}

func (p *PgxRows) Next() bool { return p.rows.Next() }

func (p *PgxRows) Columns() ([]string, error) {
	if p.columns == nil {
		fds := p.rows.FieldDescriptions()
		p.columns = make([]string, len(fds))
		for i, fd := range fds {
			p.columns[i] = fd.Name
		}
	}
	return p.columns, nil
}

// Values returns the current record with pgx specific types reduced to plain
// values that marshal cleanly.
func (p *PgxRows) Values() ([]any, error) {
	vals, err := p.rows.Values()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if vals[i], err = plainValue(v); err != nil {
			return nil, err
		}
	}
	return vals, nil
}

func (p *PgxRows) Err() error { return p.rows.Err() }

func (p *PgxRows) Close() error {
	p.rows.Close()
	return nil
}

// plainValue maps uuid columns to their canonical text and pgtype values
// (numeric, interval, ranges) to their driver representation.
func plainValue(v any) (any, error) {
	switch x := v.(type) {
	case [16]byte:
		return uuid.UUID(x).String(), nil
	case driver.Valuer:
		return x.Value()
	default:
		return v, nil
	}
}

type pgxResult pgconn.CommandTag

func (r pgxResult) RowsAffected() (int64, error) {
	return pgconn.CommandTag(r).RowsAffected(), nil
}

var _ Database = (*PgxDatabase)(nil)
