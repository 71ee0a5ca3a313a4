package dialect

type DuckDB struct{}

func NewDuckDBDialect() Dialect {
	return &DuckDB{}
}

func (DuckDB) Name() string {
	return "duckdb"
}

func (DuckDB) Placeholder(n int) string {
	return "?"
}

func (DuckDB) RenderValue(v any) any {
	return v
}
