package config

import "github.com/Chandra-Moulii/project-planner/internal/config/colors"

// ColorScheme is the CLI colour configuration.
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}

// SchemeFor resolves the colours to render with. An explicit preset in
// the config wins; otherwise the stored theme picks the light or dark preset
// and custom colours are laid over it.
func (c *Config) SchemeFor(light bool) ColorScheme {
	if c.custom.Preset != "" {
		return c.Colors
	}
	scheme := *colors.ForTheme(light)
	scheme.MergeFrom(c.custom)
	return scheme
}
