package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) String() string { return "label:" + string(l) }

func TestEscapeLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Plain", "abc", "abc"},
		{"SingleQuote", "x'y", "x''y"},
		{"OnlyQuotes", "''", "''''"},
		{"Int", 109, "109"},
		{"Float", 1.5, "1.5"},
		{"Bool", true, "true"},
		{"Nil", nil, ""},
		{"Bytes", []byte("o'k"), "o''k"},
		{"Stringer", label("a'b"), "label:a''b"},
		{"Time", time.Date(2025, 7, 12, 9, 30, 0, 0, time.UTC), "2025-07-12 09:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeLiteral(tt.in))
		})
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, "'Akashitha'", Quote("Akashitha"))
	assert.Equal(t, "'x''y'", Quote("x'y"))
	assert.Equal(t, "''", Quote(""))
	assert.Equal(t, "'109'", Quote(109))
}

func TestQuoteNeverTerminatesEarly(t *testing.T) {
	inputs := []string{"'", "a'", "'b", "it's", "'; DROP TABLE users; --", "a''b"}
	for _, in := range inputs {
		q := Quote(in)
		body := q[1 : len(q)-1]
		assert.Equal(t, byte('\''), q[0])
		assert.Equal(t, byte('\''), q[len(q)-1])
		// Inside the literal every quote must belong to a doubled pair.
		for i := 0; i < len(body); i++ {
			if body[i] == '\'' {
				if assert.Less(t, i+1, len(body), "dangling quote in %q", q) {
					assert.Equal(t, byte('\''), body[i+1], "unpaired quote in %q", q)
				}
				i++
			}
		}
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	assert.Equal(t, "RAVI", NormalizeIdentifier("ravi"))
	assert.Equal(t, "USER_ACCOUNTS", NormalizeIdentifier("  user_Accounts "))
	assert.Equal(t, "", NormalizeIdentifier("   "))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$3", NewPostgresDialect().Placeholder(3))
	assert.Equal(t, "?", NewMySQLDialect().Placeholder(3))
	assert.Equal(t, "?", NewTiDBDialect().Placeholder(1))
	assert.Equal(t, ":2", NewOracleDialect().Placeholder(2))
	assert.Equal(t, "?", NewSQLiteDialect().Placeholder(7))
}

func TestForDriver(t *testing.T) {
	assert.Equal(t, "postgres", ForDriver("pgx").Name())
	assert.Equal(t, "mysql", ForDriver("mysql").Name())
	assert.Equal(t, "tidb", ForDriver("tidb").Name())
	assert.Equal(t, "oracle", ForDriver("oracle").Name())
	assert.Equal(t, "duckdb", ForDriver("duckdb").Name())
	assert.Equal(t, "sqlite3", ForDriver("sqlite3").Name())
	assert.Equal(t, "sqlite3", ForDriver("unknown").Name())
}

func TestRenderValue(t *testing.T) {
	ts := time.Date(2025, 7, 12, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-07-12 09:30:00.000000", NewMySQLDialect().RenderValue(ts))
	assert.Equal(t, 1, NewOracleDialect().RenderValue(true))
	assert.Equal(t, 0, NewOracleDialect().RenderValue(false))
	assert.Equal(t, "x", NewPostgresDialect().RenderValue("x"))
}
