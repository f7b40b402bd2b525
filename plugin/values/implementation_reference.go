package values

import (
	"fmt"
	"strings"
)

// ReferenceDelimiter separates the module path from the symbol name.
const ReferenceDelimiter = ":"

// ImplementationReference points at the symbol realizing a descriptor.
// Format: dotted.module.path:SymbolName
type ImplementationReference struct {
	module string // strategies.grid
	symbol string // GridStrategy
}

// NewImplementationReference creates a reference from its components.
func NewImplementationReference(module, symbol string) ImplementationReference {
	return ImplementationReference{module: module, symbol: symbol}
}

// ParseImplementationReference splits ref on the single delimiter.
// Examples:
//   - platforms.binance:BinanceAdapter
//   - strategies.grid:GridStrategy
func ParseImplementationReference(ref string) (ImplementationReference, error) {
	parts := strings.Split(ref, ReferenceDelimiter)
	if len(parts) != 2 {
		return ImplementationReference{}, fmt.Errorf(
			"invalid reference format %q: expected 'module.path%sSymbol'", ref, ReferenceDelimiter)
	}

	module := strings.TrimSpace(parts[0])
	symbol := strings.TrimSpace(parts[1])
	if module == "" || symbol == "" {
		return ImplementationReference{}, fmt.Errorf(
			"invalid reference format %q: module path and symbol name must be non-empty", ref)
	}

	return ImplementationReference{module: module, symbol: symbol}, nil
}

// String returns the canonical module:symbol form.
func (r ImplementationReference) String() string {
	return r.module + ReferenceDelimiter + r.symbol
}

// Module returns the module path part.
func (r ImplementationReference) Module() string {
	return r.module
}

// Symbol returns the symbol name part.
func (r ImplementationReference) Symbol() string {
	return r.symbol
}

// IsZero reports whether the reference is empty.
func (r ImplementationReference) IsZero() bool {
	return r.module == "" && r.symbol == ""
}

// Equals checks equality with another reference.
func (r ImplementationReference) Equals(other ImplementationReference) bool {
	return r.module == other.module && r.symbol == other.symbol
}
