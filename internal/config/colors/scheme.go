package colors

// ColorScheme defines all configurable console colors
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Boxed header titles
	Header string `yaml:"header"`

	// Priority tiers
	High   string `yaml:"high"`
	Medium string `yaml:"medium"`
	Low    string `yaml:"low"`

	// Rejected input messages
	Error string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)

	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	if c.Header == "" {
		c.Header = preset.Header
	}
	if c.High == "" {
		c.High = preset.High
	}
	if c.Medium == "" {
		c.Medium = preset.Medium
	}
	if c.Low == "" {
		c.Low = preset.Low
	}
	if c.Error == "" {
		c.Error = preset.Error
	}
}
