package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the server and store the session",
	Long: `Log in to the server and store the session token in the local state database.

When the server has no account yet, the first admin account is created.

Examples:
  arrdeck login -u admin
  echo "$PASSWORD" | arrdeck login -u admin --password-stdin`,
	Args: cobra.NoArgs,
	RunE: runLoginCmd,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session and forget stored credentials",
	Args:  cobra.NoArgs,
	RunE:  runLogoutCmd,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	RunE:  runWhoamiCmd,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	loginCmd.Flags().StringP("username", "u", "", "Username (prompted when empty)")
	loginCmd.Flags().Bool("password-stdin", false, "Read the password from stdin")
}

func runLoginCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	username, _ := cmd.Flags().GetString("username")
	fromStdin, _ := cmd.Flags().GetBool("password-stdin")

	in := bufio.NewReader(cmd.InOrStdin())
	if username == "" {
		if fromStdin {
			return errors.New("--username is required with --password-stdin")
		}
		fmt.Fprint(out, "Username: ")
		line, err := readLine(in)
		if err != nil {
			return fmt.Errorf("read username: %w", err)
		}
		username = line
	}
	if username == "" {
		return errors.New("username is required")
	}

	password, err := readPassword(out, in, fromStdin)
	if err != nil {
		return err
	}
	if password == "" {
		return errors.New("password is required")
	}

	setup, err := app.client.SetupStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to check setup status: %w", err)
	}

	login := app.client.Login
	if setup.NeedsSetup {
		app.log.Info("server needs setup, creating first account", "username", username)
		login = app.client.Setup
	}
	resp, err := login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if err := app.creds.SetUsername(resp.User.Username); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out, resp.User)
	}
	if setup.NeedsSetup {
		fmt.Fprintf(out, "Created account %s and logged in to %s\n", resp.User.Username, app.client.BaseURL())
		return nil
	}
	fmt.Fprintf(out, "Logged in to %s as %s\n", app.client.BaseURL(), resp.User.Username)
	return nil
}

func runLogoutCmd(cmd *cobra.Command, args []string) error {
	if err := app.client.Logout(cmd.Context()); err != nil {
		// The local token is gone either way.
		app.log.Warn("server logout failed", "error", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged out of %s\n", app.client.BaseURL())
	return nil
}

func runWhoamiCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	user, err := app.client.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	session, err := app.creds.Session(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out, user)
	}
	fmt.Fprintf(out, "%s", user.Username)
	if user.Role != "" {
		fmt.Fprintf(out, " (%s)", user.Role)
	}
	fmt.Fprintf(out, " on %s\n", app.client.BaseURL())
	if session != nil && !session.LoggedInAt.IsZero() {
		fmt.Fprintf(out, "Logged in %s\n", formatTimeAgo(session.LoggedInAt))
	}
	return nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword reads without echo from a terminal, otherwise a plain line.
func readPassword(out io.Writer, in *bufio.Reader, fromStdin bool) (string, error) {
	fd := int(os.Stdin.Fd())
	if fromStdin || !term.IsTerminal(fd) {
		pw, err := readLine(in)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return pw, nil
	}
	fmt.Fprint(out, "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(pw)), nil
}
