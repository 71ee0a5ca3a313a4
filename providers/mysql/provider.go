package mysql

import (
	"context"
	"net"
	"strconv"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	driver "github.com/go-sql-driver/mysql"
)

type Provider struct{}

func init() {
	connector.Register("mysql", &Provider{})
}

// BuildDSN returns cfg.URL when set, otherwise a go-sql-driver DSN.
func (p *Provider) BuildDSN(cfg connector.Config) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	port := cfg.Port
	if port == 0 {
		port = 3306
	}
	mc := driver.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	if cfg.ConnectTimeout > 0 {
		mc.Timeout = cfg.ConnectTimeout
	}
	if len(cfg.Params) > 0 {
		mc.Params = make(map[string]string, len(cfg.Params))
		for k, v := range cfg.Params {
			mc.Params[k] = v
		}
	}
	return mc.FormatDSN()
}

func (p *Provider) Connect(ctx context.Context, cfg connector.Config) (connector.Connection, error) {
	return connector.OpenSQL(ctx, "mysql", p.BuildDSN(cfg), cfg.Pool, p.Dialect())
}

func (p *Provider) Dialect() dialect.Dialect {
	return dialect.NewMySQLDialect()
}
