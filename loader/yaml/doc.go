// Package yaml provides a YAML parser implementation for the loader package.
//
// The package uses github.com/goccy/go-yaml, which decodes mappings to
// map[string]any so parsed documents can serve directly as configuration
// trees. Path navigation into the parsed tree is handled by the core
// resolver, not here.
package yaml
