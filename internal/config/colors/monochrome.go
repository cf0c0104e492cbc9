package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",
		Header: "#FFFFFF",
		High:   "#FFFFFF",
		Medium: "#D0D0D0",
		Low:    "#808080",
		Error:  "#FFFFFF",
	}
}
