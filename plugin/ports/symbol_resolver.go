package ports

import "github.com/quantkit/pluginhost/plugin/values"

// SymbolResolver turns an implementation reference into a loadable symbol.
// Failures are reported with the entities plugin-load error family.
type SymbolResolver interface {
	Resolve(ref values.ImplementationReference) (any, error)
}

// VersionMatcher checks a descriptor version against a constraint.
type VersionMatcher interface {
	Satisfies(constraint, version string) (bool, error)
}
