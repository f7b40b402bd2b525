package plugin

import (
	"sort"

	"github.com/quantkit/pluginhost/plugin/entities"
	"github.com/quantkit/pluginhost/plugin/values"
)

// GetDescriptor returns a copy of the named descriptor, scanning once if
// the name is not cached.
func (l *Loader) GetDescriptor(kind values.Kind, name string) (entities.Descriptor, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	desc, ok := l.lookupLocked(kind, name)
	if !ok {
		return nil, false
	}
	return desc.CloneDescriptor(), true
}

// Platform returns the named platform descriptor.
func (l *Loader) Platform(name string) (*entities.PlatformDescriptor, bool) {
	d, ok := l.GetDescriptor(values.KindPlatform, name)
	if !ok {
		return nil, false
	}
	p, ok := d.(*entities.PlatformDescriptor)
	return p, ok
}

// Strategy returns the named strategy descriptor.
func (l *Loader) Strategy(name string) (*entities.StrategyDescriptor, bool) {
	d, ok := l.GetDescriptor(values.KindStrategy, name)
	if !ok {
		return nil, false
	}
	s, ok := d.(*entities.StrategyDescriptor)
	return s, ok
}

// ListNames returns the cached names of one kind, sorted. It scans first
// unless the cache is already populated.
func (l *Loader) ListNames(kind values.Kind) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scanLocked(kind, false)
	names := make([]string, 0, len(l.descriptors[kind]))
	for name := range l.descriptors[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StrategiesFor returns the names of strategies that list platform in
// supported_platforms, sorted.
func (l *Loader) StrategiesFor(platform string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.scanLocked(values.KindStrategy, false)
	var names []string
	for name, d := range l.descriptors[values.KindStrategy] {
		if s, ok := d.(*entities.StrategyDescriptor); ok && s.SupportsPlatform(platform) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// VersionSatisfies reports whether the named plugin's version meets constraint.
func (l *Loader) VersionSatisfies(kind values.Kind, name, constraint string) (bool, error) {
	l.mu.Lock()
	desc, ok := l.lookupLocked(kind, name)
	l.mu.Unlock()
	if !ok {
		return false, &entities.PluginNotFoundError{Kind: kind, Name: name}
	}

	var version string
	switch d := desc.(type) {
	case *entities.PlatformDescriptor:
		version = d.Version
	case *entities.StrategyDescriptor:
		version = d.Version
	}
	return l.versions.Satisfies(constraint, version)
}

// Stats reports cache sizes.
type Stats struct {
	Platforms          int
	Strategies         int
	ResolvedPlatforms  int
	ResolvedStrategies int
	TrackedFiles       int
}

// Stats returns the current cache sizes without scanning.
func (l *Loader) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Stats{
		Platforms:          len(l.descriptors[values.KindPlatform]),
		Strategies:         len(l.descriptors[values.KindStrategy]),
		ResolvedPlatforms:  len(l.resolved[values.KindPlatform]),
		ResolvedStrategies: len(l.resolved[values.KindStrategy]),
		TrackedFiles:       len(l.mtimes),
	}
}

func (l *Loader) lookupLocked(kind values.Kind, name string) (entities.Descriptor, bool) {
	if _, ok := l.descriptors[kind][name]; !ok {
		l.scanLocked(kind, false)
	}
	desc, ok := l.descriptors[kind][name]
	return desc, ok
}
