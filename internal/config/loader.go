package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd
var osLookupEnv = os.LookupEnv

const (
	userConfigDir    = ".config/statusboard"
	projectConfigDir = ".statusboard"
	configFileName   = "config.yaml"
	dotEnvFileName   = ".env"

	EnvAPIURL   = "STATUSBOARD_API_URL"
	EnvTimeout  = "STATUSBOARD_TIMEOUT"
	EnvLogLevel = "STATUSBOARD_LOG_LEVEL"
)

// LoadConfig loads the statusboard configuration by layering default, user,
// project and environment settings.
func LoadConfig() (StatusboardConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if _, statErr := os.Stat(userConfigPath); !os.IsNotExist(statErr) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return StatusboardConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if _, statErr := os.Stat(projectConfigPath); !os.IsNotExist(statErr) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return StatusboardConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
	}

	dotEnv, err := loadDotEnv()
	if err != nil {
		return StatusboardConfig{}, err
	}
	config, err = applyEnvOverrides(config, func(key string) (string, bool) {
		if v, ok := osLookupEnv(key); ok {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok
	})
	if err != nil {
		return StatusboardConfig{}, err
	}

	return config, nil
}

// LoadConfigFromPath layers a single config file over the defaults, then applies
// environment overrides. User and project files are not consulted.
func LoadConfigFromPath(path string) (StatusboardConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return StatusboardConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	config := mergeConfigs(GetDefaultConfig(), fileConfig)

	dotEnv, err := loadDotEnv()
	if err != nil {
		return StatusboardConfig{}, err
	}
	return applyEnvOverrides(config, func(key string) (string, bool) {
		if v, ok := osLookupEnv(key); ok {
			return v, true
		}
		v, ok := dotEnv[key]
		return v, ok
	})
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

var getDotEnvPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, dotEnvFileName), nil
}

// loadDotEnv reads the .env file without touching the process environment.
func loadDotEnv() (map[string]string, error) {
	path, err := getDotEnvPath()
	if err != nil {
		return nil, nil
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return values, nil
}

// loadConfigFromFile loads a StatusboardConfig from a YAML file.
func loadConfigFromFile(filePath string) (StatusboardConfig, error) {
	var config StatusboardConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return StatusboardConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return StatusboardConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Zero values in the overlay leave the base untouched; serverLogout can only be switched on.
func mergeConfigs(base, overlay StatusboardConfig) StatusboardConfig {
	merged := base

	if overlay.API.BaseURL != "" {
		merged.API.BaseURL = overlay.API.BaseURL
	}
	if overlay.API.Timeout != 0 {
		merged.API.Timeout = overlay.API.Timeout
	}

	if overlay.Auth.ServerLogout {
		merged.Auth.ServerLogout = true
	}
	if overlay.Auth.LogoutPath != "" {
		merged.Auth.LogoutPath = overlay.Auth.LogoutPath
	}

	if overlay.UI.DateFormat != "" {
		merged.UI.DateFormat = overlay.UI.DateFormat
	}
	if overlay.UI.StatusMessageSeconds > 0 {
		merged.UI.StatusMessageSeconds = overlay.UI.StatusMessageSeconds
	}
	if overlay.UI.LogLevel != "" {
		merged.UI.LogLevel = overlay.UI.LogLevel
	}

	return merged
}

func applyEnvOverrides(config StatusboardConfig, lookup func(string) (string, bool)) (StatusboardConfig, error) {
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		config.API.BaseURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvTimeout); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return StatusboardConfig{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		config.API.Timeout = d
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		config.UI.LogLevel = strings.TrimSpace(v)
	}
	return config, nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
