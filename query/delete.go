package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

// DELETE FROM <TABLE> [<condition>]
// Callers include WHERE themselves; nothing is prefixed.
func (b *Builder) delete(r *request.DeleteRequest) Statement {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(dialect.NormalizeIdentifier(r.Table))
	if !request.Blank(r.Condition) {
		sb.WriteByte(' ')
		sb.WriteString(r.Condition)
	}

	return Statement{Kind: request.Delete, Verb: request.Delete.Verb(), SQL: sb.String()}
}
