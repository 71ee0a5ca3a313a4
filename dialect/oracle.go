package dialect

import "strconv"

type Oracle struct{}

func NewOracleDialect() Dialect {
	return &Oracle{}
}

func (Oracle) Name() string {
	return "oracle"
}

func (Oracle) Placeholder(n int) string {
	return ":" + strconv.Itoa(n)
}

// RenderValue maps booleans to 1/0 since Oracle has no SQL boolean before 23c.
func (Oracle) RenderValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
