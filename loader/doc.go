// Package loader connects configuration sources to the krona core.
//
// The package uses an interface-based design with two extension points:
//   - Fetcher: retrieves raw configuration data (file, env, etc.)
//   - Parser: deserializes raw data into a generic value
//
// Load composes the two into a configuration tree, classifying boundary
// failures as ErrSourceUnreadable, ErrParseFailure, or
// ErrInvalidParseResult. ParserFor selects a format parser from a file
// extension (YAML, TOML, JSON), failing with ErrUnsupportedFormat for
// anything else. Provider additionally validates the loaded tree
// against a schema, and NewModule wires the whole pipeline into an Fx
// application under a named tag.
//
// A typical usage pattern:
//
//	fetcher, err := file.New("config.yaml")
//	parser, err := loader.ParserFor("config.yaml")
//	tree, err := loader.Provider(schema)(parser, fetcher)
package loader
