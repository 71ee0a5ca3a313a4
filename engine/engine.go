package engine

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/Konsultn-Engineering/smartcrud/cache"
	"github.com/Konsultn-Engineering/smartcrud/database"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/query"
	"github.com/Konsultn-Engineering/smartcrud/request"
	"github.com/Konsultn-Engineering/smartcrud/result"
)

// Engine builds SQL from requests and, in execute mode, runs it against a
// database. An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	db      database.Database
	dialect dialect.Dialect
	literal *query.Builder
	bound   *query.Builder
	stmts   *cache.StatementCache
	logger  *slog.Logger
	ids     IDGenerator
	timeout time.Duration
	closer  io.Closer

	useLiteral    bool
	strict        bool
	stmtCacheSize int
	tmplCacheSize int
}

type Option func(*Engine)

// WithDialect sets the placeholder dialect for bound execution. Without one
// the engine executes literal SQL.
func WithDialect(d dialect.Dialect) Option {
	return func(e *Engine) { e.dialect = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithIDGenerator sets the call ID source. Defaults to ULIDs.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithQueryTimeout bounds every database round-trip.
func WithQueryTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithStrictTemplates rejects templates that still contain tokens after
// substitution.
func WithStrictTemplates() Option {
	return func(e *Engine) { e.strict = true }
}

// WithLiteralExecution executes the quoted literal SQL instead of binding
// values as driver parameters.
func WithLiteralExecution() Option {
	return func(e *Engine) { e.useLiteral = true }
}

func WithStatementCacheSize(n int) Option {
	return func(e *Engine) { e.stmtCacheSize = n }
}

func WithTemplateCacheSize(n int) Option {
	return func(e *Engine) { e.tmplCacheSize = n }
}

// New creates an engine over db. db may be nil when only query-only
// requests will be processed.
func New(db database.Database, opts ...Option) *Engine {
	e := &Engine{db: db}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.ids == nil {
		e.ids = NewULIDGenerator()
	}

	topts := []query.TemplateOption{query.WithCacheSize(e.tmplCacheSize)}
	if e.strict {
		topts = append(topts, query.Strict())
	}
	templates := query.NewTemplateEngine(topts...)

	e.literal = query.NewBuilder(query.WithTemplates(templates))
	if e.dialect != nil && !e.useLiteral {
		e.bound = query.NewBuilder(query.WithTemplates(templates), query.WithBinding(e.dialect))
	} else {
		e.bound = e.literal
	}
	e.stmts = cache.NewStatementCache(e.stmtCacheSize)
	return e
}

// Process handles one request. Query-only requests return the literal SQL;
// execute requests return the execution outcome. Validation failures return
// an error response and never reach the database.
func (e *Engine) Process(ctx context.Context, req request.Request) Response {
	id := e.nextID()
	if request.Absent(req) {
		return e.reject(ctx, id, result.NullInput("request"))
	}

	switch req.ReturnMode() {
	case request.QueryOnly:
		stmt, err := e.literal.Build(req)
		if err != nil {
			return e.reject(ctx, id, err)
		}
		e.logger.DebugContext(ctx, "statement built",
			"call_id", id, "kind", stmt.Kind.String(), "sql", stmt.SQL)
		return queryResponse(id, stmt.SQL)
	case request.Execute:
		stmt, err := e.bound.Build(req)
		if err != nil {
			return e.reject(ctx, id, err)
		}
		e.logger.DebugContext(ctx, "statement built",
			"call_id", id, "kind", stmt.Kind.String(), "sql", stmt.SQL, "args", len(stmt.Args))
		return outcomeResponse(id, e.execute(ctx, id, stmt))
	default:
		return e.reject(ctx, id, result.Unsupported("return mode "+req.ReturnMode().String()))
	}
}

// ProcessJSON decodes a request envelope and processes it.
func (e *Engine) ProcessJSON(ctx context.Context, data []byte) Response {
	req, err := request.Decode(data)
	if err != nil {
		return e.reject(ctx, e.nextID(), err)
	}
	return e.Process(ctx, req)
}

// Build returns the statement Process would execute for req.
func (e *Engine) Build(req request.Request) (query.Statement, error) {
	if !request.Absent(req) && req.ReturnMode() == request.QueryOnly {
		return e.literal.Build(req)
	}
	return e.bound.Build(req)
}

// Close releases cached statements and, for engines created by Open, the
// underlying connection.
func (e *Engine) Close() error {
	err := e.stmts.Close()
	if e.closer != nil {
		if cerr := e.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func (e *Engine) reject(ctx context.Context, id string, err error) Response {
	e.logger.WarnContext(ctx, "request rejected", "call_id", id, "error", err)
	return errorResponse(id, err)
}

func (e *Engine) nextID() string {
	id, err := e.ids.Generate()
	if err != nil {
		e.logger.Error("call id generation failed", "generator", e.ids.Type(), "error", err)
		return ""
	}
	return id
}
