// Package duckdb registers the embedded DuckDB driver. An empty DSN opens an
// in-memory database.
package duckdb

import (
	"context"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	_ "github.com/duckdb/duckdb-go/v2"
)

type Provider struct{}

func init() {
	connector.Register("duckdb", &Provider{})
}

func (p *Provider) BuildDSN(cfg connector.Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	if cfg.Database == ":memory:" {
		return ""
	}
	return cfg.Database
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	dsn := p.BuildDSN(cfg)
	pool := cfg.Pool
	if dsn == "" {
		pool.MaxOpen = 1
	}
	return connector.OpenSQL(ctx, "duckdb", dsn, pool, p.Dialect())
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewDuckDBDialect()
}
