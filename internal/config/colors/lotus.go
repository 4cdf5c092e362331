package colors

// Lotus returns the Kanagawa Lotus color scheme (light terminals)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		// Primary accent color
		Accent: "#624C83",

		// Semantic colors
		Create: "#6F894E",
		Edit:   "#4D699B",
		Delete: "#C84053",

		// Columns
		ColumnBorder: "#A09CAC",
		Reserved:     "#5D57A3",

		// Text colors
		Title:  "#4D699B",
		Subtle: "#8A8980",
		Normal: "#545464",
	}
}
