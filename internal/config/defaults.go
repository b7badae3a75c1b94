package config

import "time"

const (
	DefaultBaseURL              = "http://localhost:8080/api"
	DefaultTimeout              = 15 * time.Second
	DefaultLogoutPath           = "/auth/logout"
	DefaultDateFormat           = "2006-01-02 15:04"
	DefaultStatusMessageSeconds = 4
	DefaultLogLevel             = "info"
)

// GetDefaultConfig returns the built-in configuration.
// Server-side logout is off: logout only discards the local session.
func GetDefaultConfig() StatusboardConfig {
	return StatusboardConfig{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Auth: AuthConfig{
			ServerLogout: false,
			LogoutPath:   DefaultLogoutPath,
		},
		UI: UIConfig{
			DateFormat:           DefaultDateFormat,
			StatusMessageSeconds: DefaultStatusMessageSeconds,
			LogLevel:             DefaultLogLevel,
		},
	}
}
