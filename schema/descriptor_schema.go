// Package schema produces JSON Schemas for descriptor files and checks
// strategy parameters against the param_schema a strategy declares.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/values"
)

// Generator reflects descriptor types into JSON Schema documents.
type Generator struct {
	schemas   map[values.Kind][]byte
	reflector *jsonschema.Reflector
	mu        sync.RWMutex
}

// GeneratorOption configures the Generator.
type GeneratorOption func(*Generator)

// WithAdditionalProperties allows keys the descriptor types do not declare.
func WithAdditionalProperties(allow bool) GeneratorOption {
	return func(g *Generator) {
		g.reflector.AllowAdditionalProperties = allow
	}
}

// NewGenerator creates a schema generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		schemas:   make(map[values.Kind][]byte),
		reflector: new(jsonschema.Reflector),
	}
	g.reflector.ExpandedStruct = true

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Schema returns the indented JSON Schema for a descriptor kind.
func (g *Generator) Schema(kind values.Kind) ([]byte, error) {
	g.mu.RLock()
	cached, ok := g.schemas[kind]
	g.mu.RUnlock()
	if ok {
		return cached, nil
	}

	var model any
	switch kind {
	case values.KindPlatform:
		model = &entities.PlatformDescriptor{}
	case values.KindStrategy:
		model = &entities.StrategyDescriptor{}
	default:
		return nil, fmt.Errorf("unknown plugin kind: %s", kind)
	}

	s := g.reflector.Reflect(model)
	s.Title = fmt.Sprintf("%s plugin descriptor", kind)
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}

	g.mu.Lock()
	g.schemas[kind] = b
	g.mu.Unlock()
	return b, nil
}

var defaultGenerator = NewGenerator()

// DescriptorSchema returns the JSON Schema for a descriptor kind using the
// default generator.
func DescriptorSchema(kind values.Kind) ([]byte, error) {
	return defaultGenerator.Schema(kind)
}
