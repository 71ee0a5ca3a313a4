package dialect

// Dialect describes the per-database details the engine needs when it hands
// a statement to a driver. Literal text generation is dialect independent.
type Dialect interface {
	Name() string
	Placeholder(n int) string
	RenderValue(v any) any
}

// ForDriver returns the dialect registered for a driver name. Unknown drivers
// fall back to the question-mark placeholder style.
func ForDriver(driver string) Dialect {
	switch driver {
	case "postgres", "pgx", "postgresql":
		return NewPostgresDialect()
	case "mysql":
		return NewMySQLDialect()
	case "tidb":
		return NewTiDBDialect()
	case "oracle":
		return NewOracleDialect()
	case "duckdb":
		return NewDuckDBDialect()
	default:
		return NewSQLiteDialect()
	}
}
