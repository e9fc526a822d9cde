// Package json provides a JSON parser implementation for the loader package.
//
// The package uses encoding/json. Objects decode to map[string]any so
// parsed documents can serve directly as configuration trees; a
// top-level array or scalar is reported by the loader as an invalid
// parse result.
package json
