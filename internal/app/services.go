package app

import (
	"fmt"

	"statusboard/internal/api"
)

// Services holds the clients shared by the TUI and the CLI commands
type Services struct {
	API api.BoardAPI
}

// InitializeServices builds the backend client from the loaded configuration.
func InitializeServices(cfg *Config) (*Services, error) {
	if cfg.Board == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	baseURL := cfg.Board.API.BaseURL
	if cfg.APIURL != "" {
		baseURL = cfg.APIURL
	}

	opts := []api.Option{
		api.WithTimeout(cfg.Board.API.Timeout),
		api.WithLogoutPath(cfg.Board.Auth.LogoutPath),
	}
	if cfg.Version != "" {
		opts = append(opts, api.WithUserAgent("statusboard/"+cfg.Version))
	}

	client, err := api.New(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	return &Services{API: client}, nil
}
