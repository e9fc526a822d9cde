package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements loader.Fetcher for file-based configuration.
// The file contents are read once at construction time and cached.
type Fetcher struct {
	path string
	data []byte
}

// New creates a Fetcher for the file at fpath, reading and caching its
// contents. Returns an error if the file cannot be read or the path
// points to a directory.
func New(fpath string) (*Fetcher, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return &Fetcher{path: cleanPath, data: data}, nil
}

// NewFetcher returns a constructor function for a file-based Fetcher.
// The deferred form lets a DI container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		return New(fpath)
	}
}

// Path returns the cleaned path the Fetcher was constructed with.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the cached file contents. A copy is returned
// to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
