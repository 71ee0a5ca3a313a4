package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestULIDGeneratorIsMonotonic(t *testing.T) {
	g := NewULIDGenerator()
	assert.Equal(t, "ulid", g.Type())

	prev := ""
	for i := 0; i < 100; i++ {
		id, err := g.Generate()
		require.NoError(t, err)
		_, err = ulid.ParseStrict(id)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestUUIDGenerator(t *testing.T) {
	g := UUIDGenerator{}
	assert.Equal(t, "uuid", g.Type())

	id, err := g.Generate()
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
