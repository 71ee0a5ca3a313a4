package oracle

import (
	"context"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	go_ora "github.com/sijms/go-ora/v2"
)

type Provider struct{}

func init() {
	connector.Register("oracle", &Provider{})
}

// BuildDSN returns cfg.URL when set, otherwise an oracle:// URL where
// cfg.Database is the service name.
func (p *Provider) BuildDSN(cfg connector.Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	port := cfg.Port
	if port == 0 {
		port = 1521
	}
	return go_ora.BuildUrl(cfg.Host, port, cfg.Database, cfg.Username, cfg.Password, cfg.Params)
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	return connector.OpenSQL(ctx, "oracle", p.BuildDSN(cfg), cfg.Pool, p.Dialect())
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewOracleDialect()
}
