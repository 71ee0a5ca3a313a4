package query

import (
	"strings"

	"github.com/Konsultn-Engineering/smartcrud/cache"
	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
	"github.com/Konsultn-Engineering/smartcrud/result"
)

// segment is either literal template text or a {name} token.
type segment struct {
	text  string
	token bool
}

// parseTemplate splits a template into text and token segments in a single
// pass. Quotes and comments are not tracked, so a token is replaced wherever
// it appears. Values are written once and never rescanned, but feeding the
// output back in will substitute any {name} a value happened to contain.
func parseTemplate(tmpl string) []segment {
	var segs []segment
	start := 0
	flush := func(end int) {
		if end > start {
			segs = append(segs, segment{text: tmpl[start:end]})
		}
	}

	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] == '{' {
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end <= 0 {
				continue
			}
			name := tmpl[i+1 : i+1+end]
			if strings.ContainsAny(name, "{'") {
				continue
			}
			flush(i)
			segs = append(segs, segment{text: name, token: true})
			i += end + 1
			start = i + 1
		}
	}
	flush(len(tmpl))
	return segs
}

// TemplateEngine substitutes {name} tokens with parameter values. It caches
// parsed templates and is safe for concurrent use.
type TemplateEngine struct {
	parsed *cache.ParseCache[[]segment]
	strict bool
}

type TemplateOption func(*TemplateEngine)

// Strict makes unmatched tokens an error instead of leaving them in place.
func Strict() TemplateOption {
	return func(t *TemplateEngine) { t.strict = true }
}

// WithCacheSize bounds the number of parsed templates kept.
func WithCacheSize(n int) TemplateOption {
	return func(t *TemplateEngine) { t.parsed = cache.NewParseCache[[]segment](n) }
}

func NewTemplateEngine(opts ...TemplateOption) *TemplateEngine {
	t := &TemplateEngine{}
	for _, opt := range opts {
		opt(t)
	}
	if t.parsed == nil {
		t.parsed = cache.NewParseCache[[]segment](cache.DefaultTemplateCacheSize)
	}
	return t
}

// Substitute replaces every {k} with the quoted value of params[k]. Unknown
// tokens are kept as written unless the engine is strict.
func (t *TemplateEngine) Substitute(tmpl string, params request.Columns) (string, error) {
	return t.render(tmpl, params, nil)
}

// Bind replaces tokens with dialect placeholders and returns the values in
// placeholder order.
func (t *TemplateEngine) Bind(tmpl string, params request.Columns, d dialect.Dialect) (string, []any, error) {
	vals := &values{d: d}
	sql, err := t.render(tmpl, params, vals)
	if err != nil {
		return "", nil, err
	}
	return sql, vals.args, nil
}

func (t *TemplateEngine) render(tmpl string, params request.Columns, vals *values) (string, error) {
	return render(t.parsed.GetOrParse(tmpl, parseTemplate), params, vals, t.strict)
}

func render(segs []segment, params request.Columns, vals *values, strict bool) (string, error) {
	if vals == nil {
		vals = &values{}
	}

	var (
		sb        strings.Builder
		unmatched []string
	)
	for _, s := range segs {
		if !s.token {
			sb.WriteString(s.text)
			continue
		}
		v, ok := params.Get(s.text)
		if !ok {
			unmatched = append(unmatched, s.text)
			sb.WriteByte('{')
			sb.WriteString(s.text)
			sb.WriteByte('}')
			continue
		}
		vals.write(&sb, v)
	}

	if strict && len(unmatched) > 0 {
		return "", result.Incomplete(unmatched)
	}
	return sb.String(), nil
}

// Substitute applies permissive substitution without caching.
func Substitute(tmpl string, params request.Columns) string {
	out, _ := render(parseTemplate(tmpl), params, nil, false)
	return out
}

// SubstituteStrict fails when any token has no matching parameter.
func SubstituteStrict(tmpl string, params request.Columns) (string, error) {
	return render(parseTemplate(tmpl), params, nil, true)
}

// Tokens lists the placeholder names of a template in order of appearance.
func Tokens(tmpl string) []string {
	var names []string
	for _, s := range parseTemplate(tmpl) {
		if s.token {
			names = append(names, s.text)
		}
	}
	return names
}
