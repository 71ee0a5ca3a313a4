package connector

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents database connection configuration. Driver selects the
// registered provider; URL, when set, is used as-is instead of building a
// DSN from the individual fields.
type Config struct {
	Driver         string            `json:"driver" yaml:"driver"`
	URL            string            `json:"url" yaml:"url"`
	Host           string            `json:"host" yaml:"host"`
	Port           int               `json:"port" yaml:"port"`
	Database       string            `json:"database" yaml:"database"`
	Username       string            `json:"username" yaml:"username"`
	Password       string            `json:"password" yaml:"password"`
	SSLMode        string            `json:"ssl_mode" yaml:"ssl_mode"`
	Params         map[string]string `json:"params" yaml:"params"`
	Pool           PoolConfig        `json:"pool" yaml:"pool"`
	ConnectTimeout time.Duration     `json:"connect_timeout" yaml:"connect_timeout"`
	QueryTimeout   time.Duration     `json:"query_timeout" yaml:"query_timeout"`
	Retry          *RetryConfig      `json:"retry,omitempty" yaml:"retry,omitempty"`
}

// PoolConfig defines connection pool settings passed through to the driver.
type PoolConfig struct {
	MaxOpen     int           `json:"max_open" yaml:"max_open"`
	MaxIdle     int           `json:"max_idle" yaml:"max_idle"`
	MaxLifetime time.Duration `json:"max_lifetime" yaml:"max_lifetime"`
	MaxIdleTime time.Duration `json:"max_idle_time" yaml:"max_idle_time"`
}

// RetryConfig defines connection retry behavior.
type RetryConfig struct {
	MaxRetries int           `json:"max_retries" yaml:"max_retries"`
	BaseDelay  time.Duration `json:"base_delay" yaml:"base_delay"`
	MaxDelay   time.Duration `json:"max_delay" yaml:"max_delay"`
	Backoff    float64       `json:"backoff" yaml:"backoff"`
}

// Environment variables that override file configuration.
const (
	EnvDriver   = "SMARTCRUD_DB_DRIVER"
	EnvURL      = "SMARTCRUD_DB_URL"
	EnvHost     = "SMARTCRUD_DB_HOST"
	EnvPort     = "SMARTCRUD_DB_PORT"
	EnvDatabase = "SMARTCRUD_DB_NAME"
	EnvUsername = "SMARTCRUD_DB_USERNAME"
	EnvPassword = "SMARTCRUD_DB_PASSWORD"
)

// LoadConfig reads a YAML file (skipped when path is empty) and applies
// environment overrides.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from the environment through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(EnvDriver, &c.Driver)
	set(EnvURL, &c.URL)
	set(EnvHost, &c.Host)
	set(EnvDatabase, &c.Database)
	set(EnvUsername, &c.Username)
	set(EnvPassword, &c.Password)

	if v, ok := lookup(EnvPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		c.Port = port
	}
	return nil
}

// Validate checks that the configuration can be handed to a provider.
func (c Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	if c.URL == "" && c.Host == "" && c.Database == "" {
		return fmt.Errorf("either url, host or database is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.Retry != nil && c.Retry.MaxRetries < 0 {
		return fmt.Errorf("invalid max_retries: %d", c.Retry.MaxRetries)
	}
	return nil
}
