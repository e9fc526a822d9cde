package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements loader.Parser for YAML documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals a YAML document into a generic value. Mappings
// decode to map[string]any, sequences to []any.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var value any

	err := yaml.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}
