package app

import (
	"log/slog"

	"github.com/charmbracelet/colorprofile"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger     *slog.Logger
	profile    colorprofile.Profile
	hasProfile bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithColorProfile forces the console color profile instead of detecting it
func WithColorProfile(p colorprofile.Profile) Option {
	return func(cfg *appConfig) {
		cfg.profile = p
		cfg.hasProfile = true
	}
}
