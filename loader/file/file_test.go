package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)

	err := os.WriteFile(path, content, 0o600)
	require.NoError(t, err)

	return path
}

func TestNew_Success(t *testing.T) {
	t.Parallel()

	content := []byte("name: test-app\n")
	path := writeFile(t, "config.yaml", content)

	fetcher, err := New(path)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, path, fetcher.Path())
}

func TestNew_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := New("/nonexistent/path/config.yaml")

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
}

func TestNew_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := New(t.TempDir())

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestNew_EmptyFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "empty.yaml", []byte{})

	fetcher, err := New(path)
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_DefersConstruction(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "late.yaml")

	constructor := NewFetcher(path)
	require.NotNil(t, constructor)

	// The file does not exist yet; only invoking the constructor reads it.
	err := os.WriteFile(path, []byte("late: true"), 0o600)
	require.NoError(t, err)

	fetcher, err := constructor()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("late: true"), data)
}

func TestFetch_ReturnsCachedCopy(t *testing.T) {
	t.Parallel()

	original := []byte(`version: "1.0"`)
	path := writeFile(t, "config.yaml", original)

	fetcher, err := New(path)
	require.NoError(t, err)

	// Modify the file after construction; Fetch keeps serving the
	// contents read at construction time.
	err = os.WriteFile(path, []byte(`version: "2.0"`), 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, data)

	// Mutating a returned slice must not corrupt the cache.
	data[0] = 'X'

	again, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, again)
}
