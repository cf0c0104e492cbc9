package config

import "github.com/thenoetrevino/priosched/internal/config/colors"

// ColorScheme is the console color theme
type ColorScheme = colors.ColorScheme

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() ColorScheme {
	return *colors.Default()
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return *colors.Monochrome()
}
