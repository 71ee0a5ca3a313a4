package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

// UPDATE <TABLE> SET <c1> = <v1>, <c2> = <v2> [WHERE <condition>]
func (b *Builder) update(r *request.UpdateRequest) Statement {
	vals := b.values()

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(dialect.NormalizeIdentifier(r.Table))
	sb.WriteString(" SET ")
	for i, it := range r.Columns.Items() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strings.TrimSpace(it.Name))
		sb.WriteString(" = ")
		vals.write(&sb, it.Value)
	}
	if !request.Blank(r.Condition) {
		sb.WriteString(" WHERE ")
		sb.WriteString(r.Condition)
	}

	return Statement{Kind: request.Update, Verb: request.Update.Verb(), SQL: sb.String(), Args: vals.args}
}
