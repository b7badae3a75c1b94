package app

import (
	"statusboard/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Backend override from the command line; empty keeps the configured URL
	APIURL string

	// Debug settings
	Debug    bool
	LogLevel string

	// Single config file instead of the layered lookup
	ConfigPath string

	// Version is reported in the User-Agent header
	Version string

	// Loaded statusboard configuration
	Board *config.StatusboardConfig
}

// NewConfig creates a new application configuration
func NewConfig(apiURL string, debug bool, logLevel string) *Config {
	return &Config{
		APIURL:   apiURL,
		Debug:    debug,
		LogLevel: logLevel,
	}
}

// EffectiveLogLevel resolves the log filter level: --debug wins, then the
// explicit flag, then the configured value.
func (c *Config) EffectiveLogLevel() string {
	if c.Debug {
		return "debug"
	}
	if c.LogLevel != "" {
		return c.LogLevel
	}
	if c.Board != nil && c.Board.UI.LogLevel != "" {
		return c.Board.UI.LogLevel
	}
	return "info"
}
