// Package parser provides functionality for parsing plugin descriptor files.
package parser

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// YAMLDescriptorParser implements DescriptorParser for YAML.
type YAMLDescriptorParser struct{}

// NewYAMLDescriptorParser creates a new YAMLDescriptorParser.
func NewYAMLDescriptorParser() DescriptorParser {
	return &YAMLDescriptorParser{}
}

// Parse unmarshals YAML bytes into a mapping.
func (p *YAMLDescriptorParser) Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	// yaml.v3 accepts an empty document without error
	if raw == nil {
		return nil, errors.New("descriptor is empty")
	}
	return raw, nil
}

// Extension implements DescriptorParser.
func (p *YAMLDescriptorParser) Extension() string {
	return ".yaml"
}
