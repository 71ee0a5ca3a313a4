package connector

import (
	"context"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
)

// Provider opens connections for one driver name.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}
