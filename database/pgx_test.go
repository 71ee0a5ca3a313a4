package database

import (
	"math/big"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainValue(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	v, err := plainValue([16]byte(id))
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", v)

	v, err = plainValue(pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "123.45", v)

	v, err = plainValue(pgtype.Numeric{})
	require.NoError(t, err)
	assert.Nil(t, v)

	now := time.Now()
	for _, in := range []any{"x", int64(7), true, now, nil} {
		v, err = plainValue(in)
		require.NoError(t, err)
		assert.Equal(t, in, v)
	}
}

func TestPgxResult(t *testing.T) {
	n, err := pgxResult(pgconn.NewCommandTag("UPDATE 3")).RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
