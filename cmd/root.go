package cmd

import (
	"os"

	"statusboard/internal/api"
	"statusboard/internal/app"

	"github.com/spf13/cobra"
)

var (
	apiURL     string
	configPath string
	logLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "statusboard",
	Short: "Browse and manage the environment status board from your terminal",
	Long: `statusboard is a terminal client for the environments status board.
It shows every environment grouped by solution together with its status,
the posts published for it and the discussion under each post.

Administrators can create and delete environments, cycle their status and
remove posts or comments. Viewers can read everything, publish posts and
comment.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. failed logins, unreachable backend)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "statusboard version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newApplication bootstraps configuration and the backend client from the global flags.
func newApplication(debug bool) (*app.Application, error) {
	cfg := app.NewConfig(apiURL, debug, logLevel)
	cfg.ConfigPath = configPath
	cfg.Version = rootCmd.Version
	return app.NewApplication(cfg)
}

// newBoardClient is replaced in tests with an in-memory backend.
var newBoardClient = func() (api.BoardAPI, error) {
	application, err := newApplication(false)
	if err != nil {
		return nil, err
	}
	return application.API(), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Status board API base URL (overrides configuration)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Load configuration from this file only")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newEnvironmentsCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newChangePasswordCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
