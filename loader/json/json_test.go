package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Document(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	data := []byte(`{"name": "test-app", "server": {"host": "localhost", "port": 8080}}`)

	value, err := parser.Parse(data)
	require.NoError(t, err)

	tree, ok := value.(map[string]any)
	require.True(t, ok, "objects should decode to map[string]any")

	assert.Equal(t, "test-app", tree["name"])

	server, ok := tree["server"].(map[string]any)
	require.True(t, ok, "nested objects should decode to map[string]any")
	assert.Equal(t, "localhost", server["host"])
	assert.InEpsilon(t, float64(8080), server["port"], 1e-9)
}

func TestParser_Parse_ArrayDocument(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	value, err := parser.Parse([]byte(`[1, 2, 3]`))

	require.NoError(t, err)
	assert.IsType(t, []any{}, value, "top-level arrays parse fine; the loader rejects them")
}

func TestParser_Parse_EmptyData(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	value, err := parser.Parse(nil)

	require.Error(t, err)
	require.ErrorIs(t, err, ErrEmptyData)
	assert.Nil(t, value)
}

func TestParser_Parse_InvalidJSON(t *testing.T) {
	t.Parallel()

	parser := NewParser()

	value, err := parser.Parse([]byte(`{"unclosed":`))

	require.Error(t, err)
	assert.Nil(t, value)
	assert.Contains(t, err.Error(), "unmarshal error")
}
