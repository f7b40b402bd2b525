package parser

import (
	"encoding/json"
	"errors"
)

// JSONDescriptorParser implements DescriptorParser for JSON.
type JSONDescriptorParser struct{}

// NewJSONDescriptorParser creates a new JSONDescriptorParser.
func NewJSONDescriptorParser() DescriptorParser {
	return &JSONDescriptorParser{}
}

// Parse unmarshals JSON bytes into a mapping.
func (p *JSONDescriptorParser) Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("descriptor is null")
	}
	return raw, nil
}

// Extension implements DescriptorParser.
func (p *JSONDescriptorParser) Extension() string {
	return ".json"
}
