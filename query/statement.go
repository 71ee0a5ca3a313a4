package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

// Statement is generated SQL plus the kind that produced it. Args is empty
// for literal text and holds driver-bound values otherwise.
type Statement struct {
	Kind request.Kind
	Verb string
	SQL  string
	Args []any
}

func (s Statement) String() string {
	return s.SQL
}

// Bound reports whether the statement carries placeholder arguments.
func (s Statement) Bound() bool {
	return len(s.Args) > 0
}

// values renders literal values either inline or as placeholders. One is
// created per call and never shared.
type values struct {
	d    dialect.Dialect
	args []any
}

func (v *values) write(sb *strings.Builder, val any) {
	if v.d == nil {
		sb.WriteString(dialect.Quote(val))
		return
	}
	v.args = append(v.args, v.d.RenderValue(val))
	sb.WriteString(v.d.Placeholder(len(v.args)))
}
