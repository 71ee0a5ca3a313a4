// Package sqlite registers the "sqlite3" driver with the connector. It is
// handy for local runs and tests where no database server is available.
package sqlite

import (
	"context"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	_ "github.com/mattn/go-sqlite3"
)

type Provider struct{}

func init() {
	connector.Register("sqlite3", &Provider{})
}

// BuildDSN prefers cfg.URL, then cfg.Database as a file path, then an
// in-memory database.
func (p *Provider) BuildDSN(cfg connector.Config) string {
	switch {
	case cfg.URL != "":
		return cfg.URL
	case cfg.Database != "":
		return cfg.Database
	default:
		return ":memory:"
	}
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	dsn := p.BuildDSN(cfg)
	pool := cfg.Pool
	if dsn == ":memory:" {
		// Every connection to :memory: is a separate database.
		pool.MaxOpen = 1
	}
	return connector.OpenSQL(ctx, "sqlite3", dsn, pool, p.Dialect())
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewSQLiteDialect()
}
