package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

// INSERT INTO <TABLE> (<c1>,<c2>) VALUES (<v1>,<v2>)
func (b *Builder) insert(r *request.InsertRequest) Statement {
	items := r.Columns.Items()
	vals := b.values()

	var sb strings.Builder
	sb.Grow(32 + len(items)*16)
	sb.WriteString("INSERT INTO ")
	sb.WriteString(dialect.NormalizeIdentifier(r.Table))
	sb.WriteString(" (")
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strings.TrimSpace(it.Name))
	}
	sb.WriteString(") VALUES (")
	for i, it := range items {
		if i > 0 {
			sb.WriteByte(',')
		}
		vals.write(&sb, it.Value)
	}
	sb.WriteByte(')')

	return Statement{Kind: request.Insert, Verb: request.Insert.Verb(), SQL: sb.String(), Args: vals.args}
}
