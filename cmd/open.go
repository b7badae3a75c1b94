package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var tuiDebugMode bool

func newOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open the interactive status board",
		Long: `Opens the status board in a full-screen terminal UI.

You start on the login screen; from there you can also register a new account
or change a password. After signing in the dashboard lists environments grouped
by solution on the left and the posts of the selected environment on the right.
Press ? inside the dashboard for the full list of keyboard shortcuts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newApplication(tuiDebugMode)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return application.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&tuiDebugMode, "debug-tui", false, "Enable debug logging in the activity log")
	return cmd
}
