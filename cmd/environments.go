package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"statusboard/internal/api"
	"statusboard/internal/state"
	"statusboard/internal/tui/view"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newEnvironmentsCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs", "ls"},
		Short:   "Sign in and print every environment grouped by solution",
		Long: `Signs in with the given user and prints the environment list the dashboard
would show, grouped by solution. Environments without a solution are listed
last under UNASSIGNED.

The password is read from the terminal unless --password is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := secretOrPrompt(password, "Password: ")
			if err != nil {
				return err
			}
			client, err := newBoardClient()
			if err != nil {
				return err
			}
			return listEnvironments(cmd.Context(), client, cmd.OutOrStdout(), username, secret)
		},
	}

	cmd.Flags().StringVarP(&username, "user", "u", "", "Username to sign in with")
	cmd.Flags().StringVar(&password, "password", "", "Password (prompted when omitted)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func listEnvironments(ctx context.Context, client api.BoardAPI, out io.Writer, username, password string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	session, err := signIn(ctx, client, username, password)
	if err != nil {
		return err
	}

	envs, err := client.ListEnvironments(ctx)
	if err != nil {
		return fmt.Errorf("failed to load environments: %w", err)
	}

	fmt.Fprintf(out, "Signed in as %s (%s)\n", session.Username, session.Role)
	if len(envs) == 0 {
		fmt.Fprintln(out, "No environments yet.")
		return nil
	}

	rows := make([][]string, 0, len(envs))
	for _, group := range view.GroupBySolution(envs) {
		for _, env := range group.Environments {
			rows = append(rows, []string{
				group.Label,
				env.Name,
				string(env.Status.Normalize()),
				strconv.FormatInt(env.ID, 10),
			})
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SOLUTION", "ENVIRONMENT", "STATUS", "ID").
		Rows(rows...)
	fmt.Fprintln(out, t.String())
	return nil
}

// signIn performs the same login the dashboard does and returns the resulting session.
func signIn(ctx context.Context, client api.BoardAPI, username, password string) (*state.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("--user is required")
	}

	res, err := client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			return nil, errors.New("invalid username or password")
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if res.Username == "" {
		res.Username = username
	}
	session := &state.Session{}
	session.Establish(res.Username, res.Role, res.Token)
	return session, nil
}
