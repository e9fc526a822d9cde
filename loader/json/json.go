package json

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements loader.Parser for JSON documents.
type Parser struct{}

// NewParser creates a new JSON parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals a JSON document into a generic value. Objects decode
// to map[string]any, arrays to []any, numbers to float64.
func (p *Parser) Parse(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	var value any

	err := json.Unmarshal(data, &value)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return value, nil
}
