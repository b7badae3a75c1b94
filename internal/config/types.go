package config

import "time"

// StatusboardConfig is the top-level configuration structure for statusboard.
type StatusboardConfig struct {
	API  APIConfig  `yaml:"api"`
	Auth AuthConfig `yaml:"auth"`
	UI   UIConfig   `yaml:"ui"`
}

// APIConfig describes how to reach the status board backend.
type APIConfig struct {
	BaseURL string        `yaml:"baseURL,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"` // 0 disables the client timeout
}

// AuthConfig controls session lifecycle behaviour.
type AuthConfig struct {
	ServerLogout bool   `yaml:"serverLogout,omitempty"`
	LogoutPath   string `yaml:"logoutPath,omitempty"`
}

// UIConfig holds presentation settings for the TUI and CLI output.
type UIConfig struct {
	DateFormat           string `yaml:"dateFormat,omitempty"`
	StatusMessageSeconds int    `yaml:"statusMessageSeconds,omitempty"`
	LogLevel             string `yaml:"logLevel,omitempty"`
}

// StatusMessageDuration is how long transient status bar messages stay visible.
func (u UIConfig) StatusMessageDuration() time.Duration {
	if u.StatusMessageSeconds <= 0 {
		return DefaultStatusMessageSeconds * time.Second
	}
	return time.Duration(u.StatusMessageSeconds) * time.Second
}
