// Package preferences manages the theme and sidebar preferences.
package preferences

import "github.com/Chandra-Moulii/project-planner/internal/models"

// SetTheme replaces the theme.
func SetTheme(s models.Snapshot, theme models.Theme) (models.Snapshot, error) {
	t, err := models.ParseTheme(string(theme))
	if err != nil {
		return s, err
	}
	s.Preferences.Theme = t
	return s, nil
}

// ToggleTheme switches between dark and light. The system theme toggles to
// dark.
func ToggleTheme(s models.Snapshot) models.Snapshot {
	s.Preferences.Theme = s.Preferences.Theme.Toggled()
	return s
}

// SetSidebar opens or closes the sidebar.
func SetSidebar(s models.Snapshot, open bool) models.Snapshot {
	s.Preferences.SidebarOpen = open
	return s
}
