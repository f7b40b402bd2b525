package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quantkit/pluginhost/plugin/values"
)

func TestPluginLoadErrorFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
	}{
		{
			name:     "malformed reference",
			err:      &MalformedReferenceError{Reference: "badformat"},
			sentinel: ErrMalformedReference,
			message:  "invalid reference format: badformat. Expected 'module.path:Symbol'",
		},
		{
			name:     "module not found",
			err:      &ModuleNotFoundError{Module: "strategies.missing"},
			sentinel: ErrModuleNotFound,
			message:  "module not found: strategies.missing",
		},
		{
			name:     "symbol not found",
			err:      &SymbolNotFoundError{Module: "strategies.grid", Symbol: "GridStrategy"},
			sentinel: ErrSymbolNotFound,
			message:  "symbol not found: GridStrategy in strategies.grid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("resolve: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.ErrorIs(t, wrapped, ErrPluginLoad)
			assert.NotErrorIs(t, wrapped, ErrPluginNotFound)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestDescriptorErrors(t *testing.T) {
	parseErr := errors.New("unexpected end of JSON input")
	malformed := &MalformedDescriptorError{File: "okx.json", Err: parseErr}
	assert.ErrorIs(t, malformed, ErrMalformedDescriptor)
	assert.ErrorIs(t, malformed, parseErr)
	assert.NotErrorIs(t, malformed, ErrPluginLoad)

	invalid := &InvalidDescriptorError{
		File:   "bybit.json",
		Kind:   values.KindPlatform,
		Errors: []string{"Missing required field: version", "Missing required field: capabilities"},
	}
	assert.ErrorIs(t, invalid, ErrInvalidDescriptor)
	assert.Equal(t,
		"invalid platform descriptor bybit.json: Missing required field: version; Missing required field: capabilities",
		invalid.Error())

	notFound := &PluginNotFoundError{Kind: values.KindStrategy, Name: "grid"}
	assert.ErrorIs(t, notFound, ErrPluginNotFound)
	assert.Equal(t, "strategy plugin not found: grid", notFound.Error())
}
