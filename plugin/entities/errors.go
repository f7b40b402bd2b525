package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quantkit/pluginhost/plugin/values"
)

// Sentinel errors for common error patterns.
// These allow both errors.Is() checks and errors.As() for detailed information.
var (
	// ErrPluginLoad is the family every symbol resolution failure belongs to.
	ErrPluginLoad = errors.New("plugin load error")

	// ErrMalformedReference is returned when an implementation reference
	// does not split into exactly module and symbol.
	ErrMalformedReference = errors.New("malformed implementation reference")

	// ErrModuleNotFound is returned when no module is registered under the reference's module path.
	ErrModuleNotFound = errors.New("module not found")

	// ErrSymbolNotFound is returned when the module exists but lacks the symbol.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrPluginNotFound is returned when no descriptor with the requested name is cached.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrMalformedDescriptor is returned when a descriptor file cannot be parsed.
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	// ErrInvalidDescriptor is returned when a parsed descriptor fails shape validation.
	ErrInvalidDescriptor = errors.New("invalid descriptor")
)

// MalformedReferenceError indicates a reference string with the wrong delimiter count.
type MalformedReferenceError struct {
	Reference string
	Err       error
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("invalid reference format: %s. Expected 'module.path%sSymbol'",
		e.Reference, values.ReferenceDelimiter)
}

func (e *MalformedReferenceError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, entities.ErrPluginLoad)
func (e *MalformedReferenceError) Is(target error) bool {
	return target == ErrMalformedReference || target == ErrPluginLoad
}

// ModuleNotFoundError indicates the module path is not registered.
type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module not found: %s", e.Module)
}

// Is implements error matching for errors.Is() checks.
func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound || target == ErrPluginLoad
}

// SymbolNotFoundError indicates the module is registered but lacks the symbol.
type SymbolNotFoundError struct {
	Module string
	Symbol string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s in %s", e.Symbol, e.Module)
}

// Is implements error matching for errors.Is() checks.
func (e *SymbolNotFoundError) Is(target error) bool {
	return target == ErrSymbolNotFound || target == ErrPluginLoad
}

// PluginNotFoundError indicates no descriptor of the kind has the name.
type PluginNotFoundError struct {
	Kind values.Kind
	Name string
}

func (e *PluginNotFoundError) Error() string {
	return fmt.Sprintf("%s plugin not found: %s", e.Kind, e.Name)
}

// Is implements error matching for errors.Is() checks.
// This allows: errors.Is(err, entities.ErrPluginNotFound)
func (e *PluginNotFoundError) Is(target error) bool {
	return target == ErrPluginNotFound
}

// MalformedDescriptorError indicates a descriptor file that is not valid structured data.
type MalformedDescriptorError struct {
	File string
	Err  error
}

func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("malformed descriptor %s: %v", e.File, e.Err)
}

func (e *MalformedDescriptorError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is() checks.
func (e *MalformedDescriptorError) Is(target error) bool {
	return target == ErrMalformedDescriptor
}

// InvalidDescriptorError carries every shape violation found in one file.
type InvalidDescriptorError struct {
	File   string
	Kind   values.Kind
	Errors []string
}

func (e *InvalidDescriptorError) Error() string {
	return fmt.Sprintf("invalid %s descriptor %s: %s", e.Kind, e.File, strings.Join(e.Errors, "; "))
}

// Is implements error matching for errors.Is() checks.
func (e *InvalidDescriptorError) Is(target error) bool {
	return target == ErrInvalidDescriptor
}
