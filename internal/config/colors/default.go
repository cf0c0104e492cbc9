package colors

// Default returns the default color scheme. Tier colors follow the labels they are shown as.
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Header: "#874BFD",

		High:   "#EF4444",
		Medium: "#F97316",
		Low:    "#3B82F6",

		Error: "#FF0000",
	}
}
