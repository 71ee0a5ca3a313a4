package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Konsultn-Engineering/smartcrud/database"
	"github.com/Konsultn-Engineering/smartcrud/query"
	"github.com/Konsultn-Engineering/smartcrud/result"
)

var errNoDatabase = errors.New("no database configured")

// Execute runs literal SQL classified by verb, ignoring case. Unknown verbs
// yield a FAIL outcome without touching the database.
func (e *Engine) Execute(ctx context.Context, sql, verb string) *result.Outcome {
	return e.execute(ctx, e.nextID(), query.Statement{Verb: verb, SQL: sql})
}

// ExecuteStatement runs a built statement, binding its arguments when it has
// any. Prepared statements are reused across calls when the database
// supports preparation.
func (e *Engine) ExecuteStatement(ctx context.Context, stmt query.Statement) *result.Outcome {
	return e.execute(ctx, e.nextID(), stmt)
}

func (e *Engine) execute(ctx context.Context, id string, stmt query.Statement) *result.Outcome {
	verb := strings.ToUpper(strings.TrimSpace(stmt.Verb))
	if verb == "" {
		verb = stmt.Kind.Verb()
	}
	start := time.Now()

	var out *result.Outcome
	switch verb {
	case "INSERT", "UPDATE", "DELETE":
		out = e.mutate(ctx, verb, stmt)
	case "SELECT":
		out = e.selectRows(ctx, verb, stmt)
	default:
		out = result.Fail(verb)
	}

	level := slog.LevelInfo
	switch out.Status {
	case result.StatusFail:
		level = slog.LevelWarn
	case result.StatusError:
		level = slog.LevelError
	}
	e.logger.Log(ctx, level, "statement executed",
		"call_id", id,
		"kind", stmt.Kind.String(),
		"verb", verb,
		"status", string(out.Status),
		"rows", out.AffectedRows,
		"elapsed", time.Since(start),
	)
	return out
}

func (e *Engine) mutate(ctx context.Context, verb string, stmt query.Statement) *result.Outcome {
	if e.db == nil {
		return result.Errored(verb, errNoDatabase)
	}
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	var (
		res database.Result
		err error
	)
	if p, ok := e.db.(database.Preparer); ok && stmt.Bound() {
		var (
			ps      database.Statement
			release func()
		)
		if ps, release, err = e.stmts.Acquire(ctx, p, stmt.SQL); err == nil {
			defer release()
			res, err = ps.ExecContext(ctx, stmt.Args...)
		}
	} else {
		res, err = e.db.ExecContext(ctx, stmt.SQL, stmt.Args...)
	}
	if err != nil {
		return result.Errored(verb, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return result.Errored(verb, err)
	}
	return result.Done(verb, n)
}

func (e *Engine) selectRows(ctx context.Context, verb string, stmt query.Statement) *result.Outcome {
	if e.db == nil {
		return result.Errored(verb, errNoDatabase)
	}
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	var (
		rows database.Rows
		err  error
	)
	if p, ok := e.db.(database.Preparer); ok && stmt.Bound() {
		var (
			ps      database.Statement
			release func()
		)
		if ps, release, err = e.stmts.Acquire(ctx, p, stmt.SQL); err == nil {
			// Deferred before rows.Close, so it runs after the rows are done.
			defer release()
			rows, err = ps.QueryContext(ctx, stmt.Args...)
		}
	} else {
		rows, err = e.db.QueryContext(ctx, stmt.SQL, stmt.Args...)
	}
	if err != nil {
		return result.Errored(verb, err)
	}
	defer rows.Close()

	data, err := collect(rows)
	if err != nil {
		return result.Errored(verb, err)
	}
	return result.Selected(verb, data)
}

// collect reads every record, keeping driver column order. Byte slices are
// reported as strings.
func collect(rows database.Rows) ([]result.Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	out := []result.Row{}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		for i, v := range vals {
			if b, ok := v.([]byte); ok {
				vals[i] = string(b)
			}
		}
		out = append(out, result.Row{Columns: cols, Values: vals})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(ctx, e.timeout)
	}
	return context.WithCancel(ctx)
}

