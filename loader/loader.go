package loader

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	krona "github.com/0xalexb/krona-config"
	jsonparser "github.com/0xalexb/krona-config/loader/json"
	tomlparser "github.com/0xalexb/krona-config/loader/toml"
	yamlparser "github.com/0xalexb/krona-config/loader/yaml"
)

// ErrSourceUnreadable is returned when the configuration source cannot be read.
var ErrSourceUnreadable = errors.New("source unreadable")

// ErrParseFailure is returned when the configuration data cannot be parsed.
var ErrParseFailure = errors.New("parse failure")

// ErrUnsupportedFormat is returned when no parser exists for a source format.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrInvalidParseResult is returned when a parser produces something
// other than a key/value tree (e.g. a bare scalar or a list document).
var ErrInvalidParseResult = errors.New("parse result is not a tree")

// Fetcher reads raw configuration data from a source.
type Fetcher interface {
	Fetch() ([]byte, error)
}

// Parser deserializes raw configuration data into a generic value.
// Mappings must decode to map[string]any so the result can serve as a
// configuration tree.
type Parser interface {
	Parse(data []byte) (any, error)
}

// Load fetches, parses, and returns a configuration tree. Fetch errors
// wrap ErrSourceUnreadable and parse errors wrap ErrParseFailure, with
// the underlying cause preserved for errors.Is checks. A parse result
// that is not a mapping fails with ErrInvalidParseResult.
func Load(fetcher Fetcher, parser Parser) (krona.Tree, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}

	value, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	switch tree := value.(type) {
	case krona.Tree:
		return tree, nil
	case map[string]any:
		return krona.Tree(tree), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidParseResult, value)
	}
}

// ParserFor selects a format parser from a source path's extension.
// Recognized extensions are .yaml, .yml, .toml, and .json; anything
// else fails with ErrUnsupportedFormat.
func ParserFor(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	case ".json":
		return jsonparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("extension %q: %w", ext, ErrUnsupportedFormat)
	}
}

// Provider returns a function that loads a configuration tree and
// validates it against schema. Loader-boundary failures propagate
// unchanged; validation failures carry the offending dotted path.
func Provider(schema krona.Schema, opts ...krona.ValidateOption) func(Parser, Fetcher) (krona.Tree, error) {
	return func(parser Parser, fetcher Fetcher) (krona.Tree, error) {
		tree, err := Load(fetcher, parser)
		if err != nil {
			return nil, err
		}

		normalized, err := krona.Validate(tree, schema, opts...)
		if err != nil {
			return nil, fmt.Errorf("validating configuration: %w", err)
		}

		slog.Debug("configuration validated", slog.Int("keys", len(normalized)))

		return normalized, nil
	}
}
