package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
	"github.com/Konsultn-Engineering/smartcrud/result"
)

// Builder turns typed requests into statements. It holds configuration only,
// so one Builder may serve any number of concurrent calls.
type Builder struct {
	bind      dialect.Dialect
	templates *TemplateEngine
}

type Option func(*Builder)

// WithBinding makes the builder emit dialect placeholders and collect the
// values as arguments instead of inlining quoted literals.
func WithBinding(d dialect.Dialect) Option {
	return func(b *Builder) { b.bind = d }
}

// WithTemplates sets the template engine used for template requests.
func WithTemplates(t *TemplateEngine) Option {
	return func(b *Builder) { b.templates = t }
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.templates == nil {
		b.templates = NewTemplateEngine()
	}
	return b
}

var literal = NewBuilder()

// Build generates literal SQL text for req.
func Build(req request.Request) (Statement, error) {
	return literal.Build(req)
}

// Build validates req and dispatches on its kind.
func (b *Builder) Build(req request.Request) (Statement, error) {
	if request.Absent(req) {
		return Statement{}, result.NullInput("request")
	}
	if err := req.Validate(); err != nil {
		return Statement{}, err
	}

	switch r := req.(type) {
	case *request.InsertRequest:
		return b.insert(r), nil
	case *request.SelectRequest:
		return b.selectStmt(r), nil
	case *request.UpdateRequest:
		return b.update(r), nil
	case *request.DeleteRequest:
		return b.delete(r), nil
	case *request.TemplateRequest:
		return b.template(r)
	default:
		return Statement{}, result.Unsupported(req.Kind().String())
	}
}

func (b *Builder) values() *values {
	return &values{d: b.bind}
}

func (b *Builder) template(r *request.TemplateRequest) (Statement, error) {
	var (
		sql  string
		args []any
		err  error
	)
	if b.bind != nil {
		sql, args, err = b.templates.Bind(r.Template, r.Params, b.bind)
	} else {
		sql, err = b.templates.Substitute(r.Template, r.Params)
	}
	if err != nil {
		return Statement{}, err
	}
	return Statement{
		Kind: request.Template,
		Verb: strings.ToUpper(strings.TrimSpace(r.Verb)),
		SQL:  sql,
		Args: args,
	}, nil
}
