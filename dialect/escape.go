package dialect

import (
	"fmt"
	"strings"
	"time"
)

// Literal text helpers shared by every builder. Identifiers are upper-cased,
// literals are always rendered as single-quoted strings.

// Stringify converts any value into the text that ends up between quotes.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// EscapeLiteral doubles every single quote in v.
func EscapeLiteral(v any) string {
	return strings.ReplaceAll(Stringify(v), "'", "''")
}

// Quote returns v escaped and wrapped in single quotes.
func Quote(v any) string {
	s := EscapeLiteral(v)
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	sb.WriteString(s)
	sb.WriteByte('\'')
	return sb.String()
}

// NormalizeIdentifier applies the engine's identifier casing: trimmed and
// upper-cased.
func NormalizeIdentifier(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
