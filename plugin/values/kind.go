// Package values holds the value objects shared by the plugin loader:
// plugin kinds, implementation references and content digests.
package values

import "fmt"

// Kind identifies one of the two descriptor families the loader manages.
type Kind string

const (
	// KindPlatform is a tradable-venue adapter descriptor.
	KindPlatform Kind = "platform"
	// KindStrategy is a trading strategy descriptor.
	KindStrategy Kind = "strategy"
)

// Kinds returns every supported kind in scan order.
func Kinds() []Kind {
	return []Kind{KindPlatform, KindStrategy}
}

// ParseKind converts a string such as "platform" into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindPlatform, KindStrategy:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown plugin kind %q", s)
	}
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindPlatform || k == KindStrategy
}

// ReferenceField is the descriptor key holding the implementation reference.
func (k Kind) ReferenceField() string {
	if k == KindPlatform {
		return "adapter_class"
	}
	return "strategy_class"
}
