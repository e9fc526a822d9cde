// Package file provides a file-based Fetcher implementation for the loader package.
//
// The file is read at construction time and cached, so subsequent calls
// to Fetch return the same data without re-reading the filesystem. This
// keeps configuration stable for the lifetime of the application even
// when the underlying file changes.
//
// Usage:
//
//	fetcher, err := file.New("/path/to/config.yaml")
//	if err != nil {
//	    // file not found, permission denied, path is a directory, ...
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to detect directory paths.
// NewFetcher wraps New in a constructor function for DI containers that
// control instantiation time.
package file
