package styles

import (
	"charm.land/lipgloss/v2"

	"github.com/Chandra-Moulii/project-planner/internal/config"
	"github.com/Chandra-Moulii/project-planner/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Column:", "Edited:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description"

	// Status styles
	SuccessStyle  lipgloss.Style
	InfoStyle     lipgloss.Style
	ErrorStyle    lipgloss.Style
	ReservedStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Create))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Edit))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Delete))

	ReservedStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(colors.Reserved))
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// paletteHex maps column colour tokens to terminal colours.
var paletteHex = map[string]string{
	"bg-red-600":    "#DC2626",
	"bg-blue-600":   "#2563EB",
	"bg-green-600":  "#16A34A",
	"bg-yellow-600": "#CA8A04",
	"bg-purple-600": "#9333EA",
	"bg-pink-600":   "#DB2777",
	"bg-indigo-600": "#4F46E5",
	"bg-teal-600":   "#0D9488",
	"bg-orange-600": "#EA580C",
	"bg-gray-600":   "#4B5563",
}

// TokenHex returns the hex colour of a palette token. Unknown tokens map to
// gray.
func TokenHex(token string) string {
	if hex, ok := paletteHex[token]; ok {
		return hex
	}
	return paletteHex["bg-gray-600"]
}

// ColoredText renders text with a hex color
func ColoredText(text, hexColor string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor)).
		Render(text)
}

// RenderColumnChip renders a column as "● name" in its palette colour,
// marking reserved columns.
func RenderColumnChip(col models.Column) string {
	chip := lipgloss.NewStyle().
		Foreground(lipgloss.Color(TokenHex(col.Color))).
		Bold(true).
		Render("● " + col.Name)
	if col.IsReserved() {
		chip += " " + ReservedStyle.Render("(reserved)")
	}
	return chip
}

// RenderCard wraps content in a styled card border
func RenderCard(content string) string {
	return CardStyle.Render(content)
}
