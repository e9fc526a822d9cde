package toml

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements loader.Parser for TOML documents.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals a TOML document into a generic value. A TOML
// document is always a table at the top level, so the result is a
// map[string]any on success.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	value := map[string]any{}

	err := toml.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}
