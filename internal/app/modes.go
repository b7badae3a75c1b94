package app

import (
	"context"

	"statusboard/internal/tui/controller"
	"statusboard/internal/tui/design"
	"statusboard/internal/tui/model"
	"statusboard/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// programRunner is swapped in tests so the TUI never takes over the terminal.
var programRunner = func(p *tea.Program) error {
	_, err := p.Run()
	return err
}

// tuiOptions maps the loaded configuration onto the dashboard options.
func tuiOptions(cfg *Config) model.Options {
	return model.Options{
		ServerLogout:          cfg.Board.Auth.ServerLogout,
		DateFormat:            cfg.Board.UI.DateFormat,
		StatusMessageDuration: cfg.Board.UI.StatusMessageDuration(),
		DebugMode:             cfg.Debug,
	}
}

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, cfg *Config, services *Services) error {
	logging.Info("CLI", "Starting TUI mode...")

	design.Initialize(true)

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logging.ParseLevel(cfg.EffectiveLogLevel()))
	defer logging.CloseTUIChannel()

	p := controller.NewProgram(services.API, tuiOptions(cfg), logChan)

	// Stop the program when the caller's context is cancelled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if err := programRunner(p); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	return nil
}
