package entities

import "github.com/quantkit/pluginhost/plugin/values"

// PlatformDescriptor identifies one tradable-venue adapter.
type PlatformDescriptor struct {
	// Name is the unique key (e.g., "binance")
	Name string `json:"name"`

	DisplayName string `json:"display_name"`

	// AdapterReference points at the adapter symbol (e.g., "platforms.binance:BinanceAdapter")
	AdapterReference string `json:"adapter_class"`

	Version     string `json:"version"`
	Description string `json:"description,omitempty"`

	Capabilities        Capabilities     `json:"capabilities"`
	RequiredCredentials []CredentialSpec `json:"required_credentials"`

	Source DescriptorSource `json:"-"`
}

// Capabilities declares what features a platform adapter supports.
type Capabilities struct {
	PositionMode        string   `json:"position_mode"`
	UnitType            string   `json:"unit_type"`
	SupportedOrderTypes []string `json:"supported_order_types"`
	HedgeSupport        bool     `json:"hedge_support"`
}

// CredentialSpec declares one secret a platform adapter needs to operate.
type CredentialSpec struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
}

// Kind implements Descriptor.
func (d *PlatformDescriptor) Kind() values.Kind { return values.KindPlatform }

// Key implements Descriptor.
func (d *PlatformDescriptor) Key() string { return d.Name }

// Reference implements Descriptor.
func (d *PlatformDescriptor) Reference() string { return d.AdapterReference }

// Origin implements Descriptor.
func (d *PlatformDescriptor) Origin() DescriptorSource { return d.Source }

// CloneDescriptor implements Descriptor.
func (d *PlatformDescriptor) CloneDescriptor() Descriptor { return d.Clone() }

// Clone returns a deep copy of the descriptor.
func (d *PlatformDescriptor) Clone() *PlatformDescriptor {
	if d == nil {
		return nil
	}
	c := *d
	c.Capabilities.SupportedOrderTypes = cloneStrings(d.Capabilities.SupportedOrderTypes)
	if d.RequiredCredentials != nil {
		c.RequiredCredentials = append([]CredentialSpec(nil), d.RequiredCredentials...)
	}
	return &c
}

// RequiredCredentialNames returns the names of credentials marked required, in declaration order.
func (d *PlatformDescriptor) RequiredCredentialNames() []string {
	var names []string
	for _, cred := range d.RequiredCredentials {
		if cred.Required {
			names = append(names, cred.Name)
		}
	}
	return names
}

// SupportsOrderType reports whether the adapter declares the order type.
func (d *PlatformDescriptor) SupportsOrderType(orderType string) bool {
	for _, t := range d.Capabilities.SupportedOrderTypes {
		if t == orderType {
			return true
		}
	}
	return false
}
