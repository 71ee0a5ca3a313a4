package duckdb

import (
	"context"
	"testing"

	"github.com/Konsultn-Engineering/smartcrud/connector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	p := &Provider{}
	assert.Equal(t, "", p.BuildDSN(connector.Config{Database: ":memory:"}))
	assert.Equal(t, "/tmp/a.duckdb", p.BuildDSN(connector.Config{Database: "/tmp/a.duckdb"}))
	assert.Equal(t, "x.duckdb?access_mode=read_only", p.BuildDSN(connector.Config{URL: "x.duckdb?access_mode=read_only", Database: "y"}))
}

func TestConnectInMemory(t *testing.T) {
	ctx := context.Background()
	c, err := connector.New(connector.Config{Driver: "duckdb", Database: ":memory:"})
	require.NoError(t, err)
	conn, err := c.Connect(ctx)
	require.NoError(t, err)
	defer conn.Close()

	db := conn.Database()
	_, err = db.ExecContext(ctx, `CREATE TABLE ravi (name VARCHAR, id VARCHAR)`)
	require.NoError(t, err)
	res, err := db.ExecContext(ctx, `INSERT INTO RAVI (name,id) VALUES (?,?)`, "Akashitha", "109")
	require.NoError(t, err)
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, "duckdb", conn.Dialect().Name())
}
