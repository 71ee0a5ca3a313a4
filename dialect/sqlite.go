package dialect

type SQLite struct{}

func NewSQLiteDialect() Dialect {
	return &SQLite{}
}

func (SQLite) Name() string {
	return "sqlite3"
}

func (SQLite) Placeholder(n int) string {
	return "?"
}

func (SQLite) RenderValue(v any) any {
	return v
}
