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

func newRegisterCmd() *cobra.Command {
	var username, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new status board account",
		Long: `Registers a new account on the status board. The role is chosen by the
client and defaults to VIEWER; pass --role ADMIN for an administrator.

The password is read from the terminal unless --password is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedRole, err := parseRole(role)
			if err != nil {
				return err
			}
			secret, err := secretOrPrompt(password, "Password: ")
			if err != nil {
				return err
			}
			client, err := newBoardClient()
			if err != nil {
				return err
			}
			return registerUser(cmd.Context(), client, cmd.OutOrStdout(), username, secret, parsedRole)
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Username to register")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	cmd.Flags().StringVar(&role, "role", string(api.RoleViewer), "Role: VIEWER or ADMIN")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func parseRole(s string) (api.Role, error) {
	role := api.Role(strings.ToUpper(strings.TrimSpace(s)))
	for _, r := range api.Roles {
		if r == role {
			return role, nil
		}
	}
	return "", fmt.Errorf("unknown role %q: expected VIEWER or ADMIN", s)
}

func registerUser(ctx context.Context, client api.BoardAPI, out io.Writer, username, password string, role api.Role) error {
	if ctx == nil {
		ctx = context.Background()
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("--user is required")
	}

	message, err := client.Register(ctx, username, password, role)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	if strings.TrimSpace(message) == "" {
		message = "Registration successful. You can sign in now."
	}
	fmt.Fprintln(out, strings.TrimSpace(message))
	return nil
}
