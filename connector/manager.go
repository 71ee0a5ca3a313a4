package connector

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type standardConnector struct {
	provider Provider
	config   Config
}

var globalManager = &Manager{
	providers: make(map[string]Provider),
}

type Manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

// Register makes a provider available under a driver name.
func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

// Drivers lists the registered driver names.
func Drivers() []string {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	names := make([]string, 0, len(globalManager.providers))
	for n := range globalManager.providers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New returns a connector for config.Driver.
func New(config Config) (Connector, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	globalManager.mu.RLock()
	provider, ok := globalManager.providers[config.Driver]
	globalManager.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", config.Driver)
	}
	return &standardConnector{provider: provider, config: config}, nil
}

func (c *standardConnector) Config() Config {
	return c.config
}

// Connect opens a connection, retrying with backoff when configured.
func (c *standardConnector) Connect(ctx context.Context) (Connection, error) {
	if c.config.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.ConnectTimeout)
		defer cancel()
	}

	connect := func(ctx context.Context) (Connection, error) {
		return c.provider.Connect(ctx, c.config)
	}
	if c.config.Retry == nil {
		return connect(ctx)
	}
	conn, err := retryConnect(ctx, *c.config.Retry, connect)
	if err != nil {
		return nil, fmt.Errorf("failed to connect after %d retries: %w", c.config.Retry.MaxRetries, err)
	}
	return conn, nil
}
