package plugin

import (
	"fmt"

	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/values"
)

// ResolveClass returns the implementation symbol for a named plugin.
//
// A previously resolved symbol is returned from cache. Otherwise the
// descriptor is looked up (scanning once if the name is unknown) and its
// reference resolved. Every failure is logged and reported as ok == false.
func (l *Loader) ResolveClass(kind values.Kind, name string) (any, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbol, err := l.resolveLocked(kind, name)
	if err != nil {
		l.logger.Error("failed to resolve plugin implementation",
			"kind", kind,
			"plugin", name,
			"error", err)
		return nil, false
	}
	return symbol, true
}

// ResolveAs resolves a plugin and asserts its symbol to T.
func ResolveAs[T any](l *Loader, kind values.Kind, name string) (T, bool) {
	var zero T

	symbol, ok := l.ResolveClass(kind, name)
	if !ok {
		return zero, false
	}
	typed, ok := symbol.(T)
	if !ok {
		l.logger.Error("plugin implementation has unexpected type",
			"kind", kind,
			"plugin", name,
			"type", fmt.Sprintf("%T", symbol),
			"want", fmt.Sprintf("%T", zero))
		return zero, false
	}
	return typed, true
}

func (l *Loader) resolveLocked(kind values.Kind, name string) (any, error) {
	if symbol, ok := l.resolved[kind][name]; ok {
		return symbol, nil
	}

	desc, ok := l.lookupLocked(kind, name)
	if !ok {
		return nil, &entities.PluginNotFoundError{Kind: kind, Name: name}
	}

	ref, err := values.ParseImplementationReference(desc.Reference())
	if err != nil {
		return nil, &entities.MalformedReferenceError{Reference: desc.Reference(), Err: err}
	}

	symbol, err := l.symbols.Resolve(ref)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", ref, err)
	}

	l.resolved[kind][name] = symbol
	return symbol, nil
}
