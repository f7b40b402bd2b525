// Package entities contains the descriptor types cached by the plugin loader
// and the error taxonomy shared by scanning and symbol resolution.
package entities

import (
	"time"

	"github.com/quantkit/pluginhost/plugin/values"
)

// Descriptor is the kind-independent view of a cached plugin descriptor.
type Descriptor interface {
	// Kind reports which family the descriptor belongs to.
	Kind() values.Kind

	// Key returns the descriptor name used as the cache key.
	Key() string

	// Reference returns the raw implementation reference string.
	Reference() string

	// Origin returns where the descriptor was loaded from.
	Origin() DescriptorSource

	// CloneDescriptor returns a deep copy.
	CloneDescriptor() Descriptor
}

// DescriptorSource records the file a descriptor was loaded from.
type DescriptorSource struct {
	ModTime time.Time
	Path    string
	Digest  values.Digest
}

// cloneValue deep-copies the map/slice trees produced by descriptor decoding.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
