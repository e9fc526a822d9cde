// Package toml provides a TOML parser implementation for the loader package.
//
// The package uses github.com/pelletier/go-toml/v2. Tables decode to
// map[string]any so parsed documents can serve directly as configuration
// trees.
package toml
