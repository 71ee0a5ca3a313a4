package dialect

import "time"

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (MySQL) Name() string {
	return "mysql"
}

func (MySQL) Placeholder(n int) string {
	return "?"
}

// RenderValue formats times the way DATETIME(6) columns accept them when
// the DSN does not enable parseTime.
func (MySQL) RenderValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02 15:04:05.000000")
	}
	return v
}
