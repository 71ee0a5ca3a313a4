package engine

import (
	"context"
	"fmt"

	"github.com/Konsultn-Engineering/smartcrud/connector"
)

// Open connects through the provider registered for cfg.Driver and returns an
// engine bound to that connection's dialect. The connection is closed with
// the engine.
func Open(ctx context.Context, cfg connector.Config, opts ...Option) (*Engine, error) {
	c, err := connector.New(cfg)
	if err != nil {
		return nil, err
	}
	conn, err := c.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.Driver, err)
	}

	base := []Option{WithDialect(conn.Dialect())}
	if cfg.QueryTimeout > 0 {
		base = append(base, WithQueryTimeout(cfg.QueryTimeout))
	}
	e := New(conn.Database(), append(base, opts...)...)
	e.closer = conn
	return e, nil
}
