package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/url"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/quantkit/pluginhost/plugin/entities"
)

// ErrInvalidParams is returned when strategy parameters violate the
// strategy's param_schema.
var ErrInvalidParams = errors.New("invalid strategy parameters")

// ParamsError reports which strategy rejected its parameters.
type ParamsError struct {
	Err      error
	Strategy string
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("invalid parameters for strategy %s: %v", e.Strategy, e.Err)
}

func (e *ParamsError) Unwrap() error {
	return e.Err
}

func (e *ParamsError) Is(target error) bool {
	return target == ErrInvalidParams
}

// ParamValidator compiles param_schema documents and validates parameter
// sets against them. Compiled schemas are cached per strategy name,
// version and descriptor digest.
type ParamValidator struct {
	compiled map[string]*jsonschema.Schema
	draft    *jsonschema.Draft
	mu       sync.Mutex
}

// ParamValidatorOption configures the ParamValidator.
type ParamValidatorOption func(*ParamValidator)

// WithDraft sets the JSON Schema draft used when a param_schema has no $schema.
func WithDraft(d *jsonschema.Draft) ParamValidatorOption {
	return func(v *ParamValidator) {
		v.draft = d
	}
}

// NewParamValidator creates a parameter validator.
func NewParamValidator(opts ...ParamValidatorOption) *ParamValidator {
	v := &ParamValidator{
		compiled: make(map[string]*jsonschema.Schema),
		draft:    jsonschema.Draft2020,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate checks params against desc.ParamSchema.
func (v *ParamValidator) Validate(desc *entities.StrategyDescriptor, params map[string]any) error {
	s, err := v.compile(desc)
	if err != nil {
		return err
	}

	doc, err := normalize(params)
	if err != nil {
		return &ParamsError{Strategy: desc.Name, Err: err}
	}
	if err := s.Validate(doc); err != nil {
		return &ParamsError{Strategy: desc.Name, Err: err}
	}
	return nil
}

// EffectiveParams merges overrides on top of desc.DefaultParams and
// validates the result. Neither input is modified.
func (v *ParamValidator) EffectiveParams(desc *entities.StrategyDescriptor, overrides map[string]any) (map[string]any, error) {
	merged := make(map[string]any, len(desc.DefaultParams)+len(overrides))
	maps.Copy(merged, desc.DefaultParams)
	maps.Copy(merged, overrides)

	if err := v.Validate(desc, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (v *ParamValidator) compile(desc *entities.StrategyDescriptor) (*jsonschema.Schema, error) {
	key := fmt.Sprintf("%s@%s#%s", desc.Name, desc.Version, desc.Source.Digest)

	v.mu.Lock()
	defer v.mu.Unlock()

	if s, ok := v.compiled[key]; ok {
		return s, nil
	}

	raw, err := json.Marshal(desc.ParamSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal param_schema for %s: %w", desc.Name, err)
	}

	resource := "mem://strategies/" + url.PathEscape(desc.Name) + "/" + url.PathEscape(desc.Version) + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = v.draft
	if err := compiler.AddResource(resource, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("load param_schema for %s: %w", desc.Name, err)
	}
	s, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("compile param_schema for %s: %w", desc.Name, err)
	}

	v.compiled[key] = s
	return s, nil
}

// normalize converts params into the generic JSON value shapes the
// validator understands.
func normalize(params map[string]any) (any, error) {
	if params == nil {
		params = map[string]any{}
	}
	b, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
