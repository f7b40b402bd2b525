package entities

import "github.com/quantkit/pluginhost/plugin/values"

// StrategyDescriptor identifies one trading strategy.
type StrategyDescriptor struct {
	// Name is the unique key (e.g., "grid")
	Name string `json:"name"`

	DisplayName string `json:"display_name"`

	// StrategyReference points at the strategy symbol (e.g., "strategies.grid:GridStrategy")
	StrategyReference string `json:"strategy_class"`

	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	SupportedPlatforms []string       `json:"supported_platforms"`
	DefaultParams      map[string]any `json:"default_params"`

	// ParamSchema is a JSON Schema object; only its shape is checked on load.
	ParamSchema map[string]any `json:"param_schema"`

	Source DescriptorSource `json:"-"`
}

// Kind implements Descriptor.
func (d *StrategyDescriptor) Kind() values.Kind { return values.KindStrategy }

// Key implements Descriptor.
func (d *StrategyDescriptor) Key() string { return d.Name }

// Reference implements Descriptor.
func (d *StrategyDescriptor) Reference() string { return d.StrategyReference }

// Origin implements Descriptor.
func (d *StrategyDescriptor) Origin() DescriptorSource { return d.Source }

// CloneDescriptor implements Descriptor.
func (d *StrategyDescriptor) CloneDescriptor() Descriptor { return d.Clone() }

// Clone returns a deep copy of the descriptor.
func (d *StrategyDescriptor) Clone() *StrategyDescriptor {
	if d == nil {
		return nil
	}
	c := *d
	c.SupportedPlatforms = cloneStrings(d.SupportedPlatforms)
	c.DefaultParams = cloneMap(d.DefaultParams)
	c.ParamSchema = cloneMap(d.ParamSchema)
	return &c
}

// SupportsPlatform reports whether the strategy lists the platform name.
func (d *StrategyDescriptor) SupportsPlatform(platform string) bool {
	for _, p := range d.SupportedPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}
