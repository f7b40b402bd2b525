package parser

// DescriptorParser parses raw descriptor bytes into a generic mapping.
type DescriptorParser interface {
	// Parse unmarshals descriptor bytes. The top level must be a mapping.
	Parse(data []byte) (map[string]any, error)

	// Extension returns the file extension this parser reads, including the dot.
	Extension() string
}

// ForFormat returns the parser for a format name ("json" or "yaml").
func ForFormat(format string) (DescriptorParser, error) {
	switch format {
	case "", "json":
		return NewJSONDescriptorParser(), nil
	case "yaml", "yml":
		return NewYAMLDescriptorParser(), nil
	default:
		return nil, &UnsupportedFormatError{Format: format}
	}
}

// UnsupportedFormatError is returned by ForFormat for unknown format names.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return "unsupported descriptor format: " + e.Format
}
