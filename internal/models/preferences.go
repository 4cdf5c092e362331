package models

import "fmt"

// Theme is the colour theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: invalid theme %q (must be: light, dark, system)", ErrValidation, s)
}

// Toggled returns the theme a toggle switches to. System resolves to dark,
// matching a toggle from a light page.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preferences holds the small scalar UI preferences.
type Preferences struct {
	Theme       Theme
	SidebarOpen bool
}

// DefaultPreferences returns the preferences used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       ThemeLight,
		SidebarOpen: true,
	}
}
