package enums

import "fmt"

// DisplayMode controls how a supplier-discounted price is rendered.
type DisplayMode string

const (
	// DisplayModeStrikethrough shows the base price struck through next to the
	// discounted price. This is the documented default.
	DisplayModeStrikethrough DisplayMode = "strikethrough"
	// DisplayModeSimple shows only the discounted price.
	DisplayModeSimple DisplayMode = "simple"
)

var validDisplayModes = []DisplayMode{
	DisplayModeStrikethrough,
	DisplayModeSimple,
}

// String implements fmt.Stringer.
func (m DisplayMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known DisplayMode.
func (m DisplayMode) IsValid() bool {
	for _, candidate := range validDisplayModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseDisplayMode converts raw input into a DisplayMode.
func ParseDisplayMode(value string) (DisplayMode, error) {
	for _, candidate := range validDisplayModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid display mode %q", value)
}

// SanitizeDisplayMode falls back to the strikethrough default for unknown
// stored values instead of failing.
func SanitizeDisplayMode(value string) DisplayMode {
	if mode, err := ParseDisplayMode(value); err == nil {
		return mode
	}
	return DisplayModeStrikethrough
}
