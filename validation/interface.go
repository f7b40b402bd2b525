package validation

import "github.com/quantkit/pluginhost/plugin/values"

// DescriptorValidator checks that a parsed descriptor has the required shape.
type DescriptorValidator interface {
	// Validate reports every missing or malformed field for the given kind.
	Validate(kind values.Kind, raw map[string]any) *ValidationResult
}

// ValidationResult is the outcome of a structural check.
// Errors holds one human-readable message per violation, in discovery order.
type ValidationResult struct {
	Errors []string
	Valid  bool
}

func newResult(errs []string) *ValidationResult {
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
