package registry

import "github.com/quantkit/pluginhost/plugin/values"

// SymbolRegistry maps implementation references to registered symbols.
type SymbolRegistry interface {
	// Register adds a symbol under a "module.path:Symbol" reference.
	Register(reference string, symbol any) error

	// Resolve returns the symbol for a parsed reference.
	Resolve(ref values.ImplementationReference) (any, error)

	// References returns all registered references, sorted.
	References() []string
}
