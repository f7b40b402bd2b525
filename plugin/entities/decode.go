package entities

import (
	"encoding/json"
	"fmt"

	"github.com/quantkit/pluginhost/plugin/values"
)

// Decode converts a validated raw descriptor into its typed form.
// Field type mismatches (e.g. "required": "yes") are reported as errors.
func Decode(kind values.Kind, raw map[string]any, source DescriptorSource) (Descriptor, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encode descriptor: %w", err)
	}

	switch kind {
	case values.KindPlatform:
		var d PlatformDescriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode platform descriptor: %w", err)
		}
		d.Source = source
		return &d, nil
	case values.KindStrategy:
		var d StrategyDescriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("decode strategy descriptor: %w", err)
		}
		d.Source = source
		return &d, nil
	default:
		return nil, fmt.Errorf("unknown plugin kind %q", kind)
	}
}
