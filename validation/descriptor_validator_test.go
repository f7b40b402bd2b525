package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantkit/pluginhost/plugin/values"
	"github.com/quantkit/pluginhost/validation"
)

func platform() map[string]any {
	return map[string]any{
		"name":          "binance",
		"display_name":  "Binance",
		"adapter_class": "platforms.binance:BinanceAdapter",
		"version":       "1.0.0",
		"capabilities": map[string]any{
			"hedge_support":         true,
			"position_mode":         "hedge",
			"unit_type":             "quantity",
			"supported_order_types": []any{"market", "limit"},
		},
		"required_credentials": []any{
			map[string]any{"name": "api_key", "display_name": "API Key", "type": "string", "required": true},
		},
	}
}

func strategy() map[string]any {
	return map[string]any{
		"name":                "grid",
		"display_name":        "Grid",
		"strategy_class":      "strategies.grid:GridStrategy",
		"version":             "1.0.0",
		"supported_platforms": []any{"binance"},
		"default_params":      map[string]any{"levels": 10},
		"param_schema":        map[string]any{"type": "object"},
	}
}

func TestValidatePlatform_Valid(t *testing.T) {
	res := validation.ValidatePlatform(platform())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidateStrategy_Valid(t *testing.T) {
	res := validation.ValidateStrategy(strategy())
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidatePlatform_EachMissingFieldIsNamed(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"name", "display_name", "adapter_class", "version", "capabilities", "required_credentials"} {
		t.Run(field, func(t *testing.T) {
			t.Parallel()
			raw := platform()
			delete(raw, field)

			res := validation.ValidatePlatform(raw)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Missing required field: " + field}, res.Errors)
		})
	}

	for _, field := range []string{"hedge_support", "position_mode", "unit_type", "supported_order_types"} {
		t.Run("capabilities."+field, func(t *testing.T) {
			t.Parallel()
			raw := platform()
			delete(raw["capabilities"].(map[string]any), field)

			res := validation.ValidatePlatform(raw)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Missing capability field: " + field}, res.Errors)
		})
	}

	for _, field := range []string{"name", "display_name", "type", "required"} {
		t.Run("credential."+field, func(t *testing.T) {
			t.Parallel()
			raw := platform()
			delete(raw["required_credentials"].([]any)[0].(map[string]any), field)

			res := validation.ValidatePlatform(raw)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Credential 0 missing field: " + field}, res.Errors)
		})
	}
}

func TestValidateStrategy_EachMissingFieldIsNamed(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"name", "display_name", "strategy_class", "version", "supported_platforms", "default_params", "param_schema"} {
		t.Run(field, func(t *testing.T) {
			t.Parallel()
			raw := strategy()
			delete(raw, field)

			res := validation.ValidateStrategy(raw)
			assert.False(t, res.Valid)
			assert.Equal(t, []string{"Missing required field: " + field}, res.Errors)
		})
	}
}

func TestValidatePlatform_AccumulatesErrors(t *testing.T) {
	raw := map[string]any{
		"name":         "broken",
		"capabilities": map[string]any{"hedge_support": false},
		"required_credentials": []any{
			"api_key",
			map[string]any{"name": "secret"},
		},
	}

	res := validation.ValidatePlatform(raw)
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		"Missing required field: display_name",
		"Missing required field: adapter_class",
		"Missing required field: version",
		"Missing capability field: position_mode",
		"Missing capability field: unit_type",
		"Missing capability field: supported_order_types",
		"Credential 0 must be a mapping",
		"Credential 1 missing field: display_name",
		"Credential 1 missing field: type",
		"Credential 1 missing field: required",
	}, res.Errors)
}

func TestValidatePlatform_WrongContainerShapes(t *testing.T) {
	raw := platform()
	raw["capabilities"] = "all"
	raw["required_credentials"] = map[string]any{"name": "api_key"}

	res := validation.ValidatePlatform(raw)
	assert.False(t, res.Valid)
	assert.Equal(t, []string{
		"capabilities must be a mapping",
		"required_credentials must be a list",
	}, res.Errors)
}

func TestValidateStrategy_ParamSchemaShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema any
		valid  bool
	}{
		{"object with type", map[string]any{"type": "object", "properties": map[string]any{}}, true},
		{"unknown type value still passes", map[string]any{"type": "not-a-real-type"}, true},
		{"mapping without type", map[string]any{"properties": map[string]any{}}, false},
		{"not a mapping", "object", false},
		{"list", []any{"type"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := strategy()
			raw["param_schema"] = tt.schema

			res := validation.ValidateStrategy(raw)
			assert.Equal(t, tt.valid, res.Valid)
			if !tt.valid {
				assert.Equal(t, []string{"param_schema must be a valid JSON schema object"}, res.Errors)
			}
		})
	}
}

func TestStructuralValidator_DispatchesOnKind(t *testing.T) {
	v := validation.NewStructuralValidator()

	assert.True(t, v.Validate(values.KindPlatform, platform()).Valid)
	assert.True(t, v.Validate(values.KindStrategy, strategy()).Valid)
	assert.False(t, v.Validate(values.KindStrategy, platform()).Valid)

	res := v.Validate(values.Kind("exchange"), platform())
	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	raw := platform()
	before := len(raw)
	validation.ValidatePlatform(raw)
	assert.Len(t, raw, before)
	assert.Equal(t, platform(), raw)
}
