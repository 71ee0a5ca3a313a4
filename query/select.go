package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

// SELECT <c1>,<c2> FROM <TABLE> [<condition>]
// The condition is appended verbatim and never parsed.
func (b *Builder) selectStmt(r *request.SelectRequest) Statement {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, c := range r.Columns {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strings.TrimSpace(c))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(dialect.NormalizeIdentifier(r.Table))
	if !request.Blank(r.Condition) {
		sb.WriteByte(' ')
		sb.WriteString(r.Condition)
	}

	return Statement{Kind: request.Select, Verb: request.Select.Verb(), SQL: sb.String()}
}
