package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"statusboard/internal/api"

	"github.com/spf13/cobra"
)

func newChangePasswordCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the password of an account",
		Long:  `Prompts for the current and the new password and submits the change.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			oldPassword, err := secretOrPrompt("", "Current password: ")
			if err != nil {
				return err
			}
			newPassword, err := secretOrPrompt("", "New password: ")
			if err != nil {
				return err
			}
			confirm, err := secretOrPrompt("", "Repeat new password: ")
			if err != nil {
				return err
			}
			if confirm != newPassword {
				return errors.New("new passwords do not match")
			}
			client, err := newBoardClient()
			if err != nil {
				return err
			}
			return changePassword(cmd.Context(), client, cmd.OutOrStdout(), username, oldPassword, newPassword)
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Account whose password changes")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func changePassword(ctx context.Context, client api.BoardAPI, out io.Writer, username, oldPassword, newPassword string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("--user is required")
	}

	message, err := client.ChangePassword(ctx, username, oldPassword, newPassword)
	if err != nil {
		return fmt.Errorf("password change failed: %w", err)
	}
	if strings.TrimSpace(message) == "" {
		message = "Password changed."
	}
	fmt.Fprintln(out, strings.TrimSpace(message))
	return nil
}
