package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "lotus", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for titles and highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - success lines
	Edit   string `yaml:"edit"`   // Blue - info lines
	Delete string `yaml:"delete"` // Red - errors

	// Column chip colors
	ColumnBorder string `yaml:"column_border"`
	Reserved     string `yaml:"reserved"` // Marker for todo/inprogress/done

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text: ids, timestamps
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// ForTheme returns the preset matching a light or dark terminal.
func ForTheme(light bool) *ColorScheme {
	if light {
		return Lotus()
	}
	return Default()
}

// MergeFrom overrides fields with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&c.Preset, other.Preset)
	set(&c.Accent, other.Accent)
	set(&c.Create, other.Create)
	set(&c.Edit, other.Edit)
	set(&c.Delete, other.Delete)
	set(&c.ColumnBorder, other.ColumnBorder)
	set(&c.Reserved, other.Reserved)
	set(&c.Title, other.Title)
	set(&c.Subtle, other.Subtle)
	set(&c.Normal, other.Normal)
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	c.ApplyDefaultsFrom(GetPreset(c.Preset))
}

// ApplyDefaultsFrom fills in missing color values from base
func (c *ColorScheme) ApplyDefaultsFrom(base *ColorScheme) {
	custom := *c
	*c = *base
	c.MergeFrom(custom)
}
