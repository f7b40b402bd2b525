// Package registry implements the table plugin implementations register
// themselves in, replacing runtime module imports with a lookup.
//
// Implementations register at program initialization:
//
//	func init() {
//	    registry.MustRegister("strategies.grid:GridStrategy", NewGridStrategy)
//	}
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/values"
)

// SymbolTable implements SymbolRegistry using in-memory storage.
// Symbols are grouped by module path so a missing module and a missing
// symbol are reported as different errors.
type SymbolTable struct {
	modules map[string]map[string]any
	mu      sync.RWMutex
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		modules: make(map[string]map[string]any),
	}
}

// Register adds a symbol under reference. Registering the same reference
// twice is an error.
func (t *SymbolTable) Register(reference string, symbol any) error {
	ref, err := values.ParseImplementationReference(reference)
	if err != nil {
		return &entities.MalformedReferenceError{Reference: reference, Err: err}
	}
	if symbol == nil {
		return fmt.Errorf("symbol for %s cannot be nil", reference)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	symbols, ok := t.modules[ref.Module()]
	if !ok {
		symbols = make(map[string]any)
		t.modules[ref.Module()] = symbols
	}
	if _, exists := symbols[ref.Symbol()]; exists {
		return fmt.Errorf("symbol already registered: %s", ref)
	}
	symbols[ref.Symbol()] = symbol
	return nil
}

// MustRegister is like Register but panics on error. Intended for init().
func (t *SymbolTable) MustRegister(reference string, symbol any) {
	if err := t.Register(reference, symbol); err != nil {
		panic(err)
	}
}

// Resolve looks up the module, then the symbol within it.
func (t *SymbolTable) Resolve(ref values.ImplementationReference) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	symbols, ok := t.modules[ref.Module()]
	if !ok {
		return nil, &entities.ModuleNotFoundError{Module: ref.Module()}
	}
	symbol, ok := symbols[ref.Symbol()]
	if !ok {
		return nil, &entities.SymbolNotFoundError{Module: ref.Module(), Symbol: ref.Symbol()}
	}
	return symbol, nil
}

// Lookup parses reference and resolves it.
func (t *SymbolTable) Lookup(reference string) (any, error) {
	ref, err := values.ParseImplementationReference(reference)
	if err != nil {
		return nil, &entities.MalformedReferenceError{Reference: reference, Err: err}
	}
	return t.Resolve(ref)
}

// References returns all registered references, sorted.
func (t *SymbolTable) References() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var refs []string
	for module, symbols := range t.modules {
		for symbol := range symbols {
			refs = append(refs, values.NewImplementationReference(module, symbol).String())
		}
	}
	sort.Strings(refs)
	return refs
}

var defaultTable = NewSymbolTable()

// Default returns the process-wide table used by init()-time registration.
func Default() *SymbolTable {
	return defaultTable
}

// Register adds a symbol to the default table.
func Register(reference string, symbol any) error {
	return defaultTable.Register(reference, symbol)
}

// MustRegister adds a symbol to the default table, panicking on error.
func MustRegister(reference string, symbol any) {
	defaultTable.MustRegister(reference, symbol)
}

var _ SymbolRegistry = (*SymbolTable)(nil)
