package query

import (
	"testing"

	"github.com/Konsultn-Engineering/smartcrud/dialect"
	"github.com/Konsultn-Engineering/smartcrud/request"
)

func BenchmarkBuildInsert(b *testing.B) {
	req := &request.InsertRequest{
		Table:   "users",
		Columns: request.NewColumns("id", "123", "first_name", "sol", "email", "sol@sol.com", "likes", 100),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Build(req)
	}
	b.ReportAllocs()
}

func BenchmarkBuildInsertBound(b *testing.B) {
	builder := NewBuilder(WithBinding(dialect.NewPostgresDialect()))
	req := &request.InsertRequest{
		Table:   "users",
		Columns: request.NewColumns("id", "123", "first_name", "sol", "email", "sol@sol.com", "likes", 100),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(req)
	}
	b.ReportAllocs()
}

func BenchmarkSubstituteCached(b *testing.B) {
	engine := NewTemplateEngine()
	params := request.NewColumns("UNM", "ravi", "PWD", "O'Brien")
	tmpl := "SELECT * FROM users WHERE name = {UNM} AND pwd = {PWD}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Substitute(tmpl, params)
	}
	b.ReportAllocs()
}

func BenchmarkSubstituteUncached(b *testing.B) {
	params := request.NewColumns("UNM", "ravi", "PWD", "O'Brien")
	tmpl := "SELECT * FROM users WHERE name = {UNM} AND pwd = {PWD}"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Substitute(tmpl, params)
	}
	b.ReportAllocs()
}
