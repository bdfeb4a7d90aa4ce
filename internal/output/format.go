package output

import "strings"

// Format specifies the output format.
type Format string

const (
	// FormatTable outputs a human-readable table.
	FormatTable Format = "table"

	// FormatJSON outputs indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the output format.
func (f Format) String() string {
	return string(f)
}

// Valid checks if the output format is known.
func (f Format) Valid() bool {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format.
// The second return value is false for unknown input, in which case FormatTable is returned.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, true
	case "json":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatTable, false
	}
}

// ValidFormats returns a slice of valid output format strings.
func ValidFormats() []string {
	return []string{"table", "json", "yaml"}
}
