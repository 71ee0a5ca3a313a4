package query

import (
	"errors"
	"sync"
	"testing"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
	"github.com/Konsultn-Engineering/smartcrud/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginTemplate = "select count(1) from u where user_name={UNM} and password={PWD}"

func TestSubstitute(t *testing.T) {
	out := Substitute(loginTemplate, request.NewColumns("UNM", "RAVI", "PWD", "Pass12!@"))
	assert.Equal(t, "select count(1) from u where user_name='RAVI' and password='Pass12!@'", out)
	assert.Empty(t, Tokens(out))
}

func TestSubstituteEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		tmpl   string
		params request.Columns
		want   string
	}{
		{"Repeated", "{a} = {a}", request.NewColumns("a", "x"), "'x' = 'x'"},
		{"Unmatched", "a={a} b={b}", request.NewColumns("a", "1"), "a='1' b={b}"},
		{"Escaped", "name={n}", request.NewColumns("n", "O'Brien"), "name='O''Brien'"},
		{"EmptyBraces", "x = '{}' or {}", request.NewColumns("a", "1"), "x = '{}' or {}"},
		{"Unclosed", "where {a", request.NewColumns("a", "1"), "where {a"},
		{"InsideLiteral", "select '{a}', {a}", request.NewColumns("a", "1"), "select ''1'', '1'"},
		{"AfterApostropheInComment", "select * from u -- user's row\nwhere id={ID}", request.NewColumns("ID", "7"), "select * from u -- user's row\nwhere id='7'"},
		{"AfterEscapedQuote", "select 'it''s', {a}", request.NewColumns("a", "1"), "select 'it''s', '1'"},
		{"NoReinjection", "{a} {b}", request.NewColumns("a", "{b}", "b", "z"), "'{b}' 'z'"},
		{"NestedBrace", "{{a}}", request.NewColumns("a", "1"), "{'1'}"},
		{"NumberValue", "id={id}", request.NewColumns("id", 109), "id='109'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.tmpl, tt.params))
		})
	}
}

func TestSubstituteSinglePass(t *testing.T) {
	params := request.NewColumns("UNM", "RAVI", "PWD", "Pass12!@")
	once := Substitute(loginTemplate, params)
	assert.Equal(t, once, Substitute(once, params))

	// Values are never rescanned within a pass, but a second pass sees
	// whatever braces a value carried in.
	params = request.NewColumns("a", "{b}", "b", "z")
	once = Substitute("{a}", params)
	assert.Equal(t, "'{b}'", once)
	assert.Equal(t, "''z''", Substitute(once, params))
}

func TestSubstituteStrict(t *testing.T) {
	_, err := SubstituteStrict("a={a} b={b} c={c}", request.NewColumns("a", "1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, result.ErrSubstitutionIncomplete))
	assert.Contains(t, err.Error(), "b")
	assert.Contains(t, err.Error(), "c")

	out, err := SubstituteStrict("a={a}", request.NewColumns("a", "1"))
	require.NoError(t, err)
	assert.Equal(t, "a='1'", out)

	_, err = SubstituteStrict("select * from u -- user's row\nwhere id={ID} and name='{N}'", request.NewColumns("ID", "7"))
	assert.ErrorIs(t, err, result.ErrSubstitutionIncomplete)
	assert.Contains(t, err.Error(), "N")
}

func TestTemplateEngine(t *testing.T) {
	eng := NewTemplateEngine(WithCacheSize(4))
	params := request.NewColumns("UNM", "RAVI", "PWD", "Pass12!@")

	out, err := eng.Substitute(loginTemplate, params)
	require.NoError(t, err)
	assert.Equal(t, Substitute(loginTemplate, params), out)

	out, err = eng.Substitute(loginTemplate, request.NewColumns("UNM", "OTHER"))
	require.NoError(t, err)
	assert.Equal(t, "select count(1) from u where user_name='OTHER' and password={PWD}", out)
	assert.Equal(t, 1, eng.parsed.Len())

	strict := NewTemplateEngine(Strict())
	_, err = strict.Substitute(loginTemplate, request.NewColumns("UNM", "OTHER"))
	assert.True(t, errors.Is(err, result.ErrSubstitutionIncomplete))
}

func TestTemplateBind(t *testing.T) {
	eng := NewTemplateEngine()

	sql, args, err := eng.Bind(loginTemplate, request.NewColumns("PWD", "p", "UNM", "u"), dialect.NewPostgresDialect())
	require.NoError(t, err)
	assert.Equal(t, "select count(1) from u where user_name=$1 and password=$2", sql)
	assert.Equal(t, []any{"u", "p"}, args)

	sql, args, err = eng.Bind("{a} or {a} or {b}", request.NewColumns("a", 1), dialect.NewSQLiteDialect())
	require.NoError(t, err)
	assert.Equal(t, "? or ? or {b}", sql)
	assert.Equal(t, []any{1, 1}, args)

	_, _, err = NewTemplateEngine(Strict()).Bind("{b}", request.NewColumns("a", 1), dialect.NewSQLiteDialect())
	assert.True(t, errors.Is(err, result.ErrSubstitutionIncomplete))
}

func TestBuildTemplateRequest(t *testing.T) {
	req := &request.TemplateRequest{
		Verb:     "select",
		Template: loginTemplate,
		Params:   request.NewColumns("UNM", "RAVI", "PWD", "Pass12!@"),
	}

	stmt, err := Build(req)
	require.NoError(t, err)
	assert.Equal(t, request.Template, stmt.Kind)
	assert.Equal(t, "SELECT", stmt.Verb)
	assert.NotContains(t, stmt.SQL, "{")

	bound, err := NewBuilder(WithBinding(dialect.NewOracleDialect())).Build(req)
	require.NoError(t, err)
	assert.Equal(t, "select count(1) from u where user_name=:1 and password=:2", bound.SQL)
	assert.Equal(t, []any{"RAVI", "Pass12!@"}, bound.Args)

	strict := NewBuilder(WithTemplates(NewTemplateEngine(Strict())))
	_, err = strict.Build(&request.TemplateRequest{Verb: "select", Template: "{x}", Params: request.NewColumns("y", 1)})
	assert.True(t, errors.Is(err, result.ErrSubstitutionIncomplete))
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"UNM", "PWD"}, Tokens(loginTemplate))
	assert.Equal(t, []string{"quoted"}, Tokens("select '{quoted}' from dual"))
	assert.Equal(t, []string{"ID"}, Tokens("-- it's\nwhere id={ID}"))
}

func TestTemplateEngineConcurrent(t *testing.T) {
	eng := NewTemplateEngine(WithCacheSize(2))
	templates := []string{loginTemplate, "{UNM}", "x {PWD} y", "select 1"}
	params := request.NewColumns("UNM", "RAVI", "PWD", "Pass12!@")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tmpl := templates[i%len(templates)]
			out, err := eng.Substitute(tmpl, params)
			assert.NoError(t, err)
			assert.Equal(t, Substitute(tmpl, params), out)
		}(i)
	}
	wg.Wait()
}
