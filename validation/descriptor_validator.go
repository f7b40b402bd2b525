// Package validation implements structural validation of plugin descriptors.
// It checks presence and shape of fields only; values are never interpreted.
package validation

import (
	"fmt"

	"github.com/quantkit/pluginhost/plugin/values"
)

var (
	platformFields   = []string{"name", "display_name", "adapter_class", "version", "capabilities", "required_credentials"}
	capabilityFields = []string{"hedge_support", "position_mode", "unit_type", "supported_order_types"}
	credentialFields = []string{"name", "display_name", "type", "required"}
	strategyFields   = []string{"name", "display_name", "strategy_class", "version", "supported_platforms", "default_params", "param_schema"}
)

// StructuralValidator implements DescriptorValidator.
type StructuralValidator struct{}

// NewStructuralValidator creates a new StructuralValidator.
func NewStructuralValidator() DescriptorValidator {
	return &StructuralValidator{}
}

// Validate dispatches on kind.
func (v *StructuralValidator) Validate(kind values.Kind, raw map[string]any) *ValidationResult {
	switch kind {
	case values.KindPlatform:
		return ValidatePlatform(raw)
	case values.KindStrategy:
		return ValidateStrategy(raw)
	default:
		return newResult([]string{fmt.Sprintf("unknown plugin kind: %s", kind)})
	}
}

// ValidatePlatform checks a platform descriptor. Errors accumulate; the
// check never stops at the first violation.
func ValidatePlatform(raw map[string]any) *ValidationResult {
	errs := missingFields(raw, platformFields, "Missing required field: %s")

	if capVal, ok := raw["capabilities"]; ok {
		capabilities, isMap := capVal.(map[string]any)
		if !isMap {
			errs = append(errs, "capabilities must be a mapping")
		} else {
			errs = append(errs, missingFields(capabilities, capabilityFields, "Missing capability field: %s")...)
		}
	}

	if credVal, ok := raw["required_credentials"]; ok {
		errs = append(errs, validateCredentials(credVal)...)
	}

	return newResult(errs)
}

// ValidateStrategy checks a strategy descriptor. param_schema must be a
// mapping carrying a "type" key; its contents are not interpreted.
func ValidateStrategy(raw map[string]any) *ValidationResult {
	errs := missingFields(raw, strategyFields, "Missing required field: %s")

	if schemaVal, ok := raw["param_schema"]; ok {
		schema, isMap := schemaVal.(map[string]any)
		if !isMap {
			errs = append(errs, "param_schema must be a valid JSON schema object")
		} else if _, hasType := schema["type"]; !hasType {
			errs = append(errs, "param_schema must be a valid JSON schema object")
		}
	}

	return newResult(errs)
}

func validateCredentials(v any) []string {
	creds, ok := v.([]any)
	if !ok {
		return []string{"required_credentials must be a list"}
	}

	var errs []string
	for i, item := range creds {
		cred, isMap := item.(map[string]any)
		if !isMap {
			errs = append(errs, fmt.Sprintf("Credential %d must be a mapping", i))
			continue
		}
		for _, field := range credentialFields {
			if _, present := cred[field]; !present {
				errs = append(errs, fmt.Sprintf("Credential %d missing field: %s", i, field))
			}
		}
	}
	return errs
}

func missingFields(m map[string]any, fields []string, format string) []string {
	var errs []string
	for _, field := range fields {
		if _, ok := m[field]; !ok {
			errs = append(errs, fmt.Sprintf(format, field))
		}
	}
	return errs
}
