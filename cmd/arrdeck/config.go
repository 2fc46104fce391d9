package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/config"
)

var configCmd = &cobra.Command{
	Use:         "config",
	Short:       "Configuration management",
	Annotations: map[string]string{skipSetup: "true"},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file, by default to
$XDG_CONFIG_HOME/arrdeck/config.toml. An existing file is never overwritten.

With --server the file is generated with that server URL; otherwise the
commented template is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate a configuration file",
	Long:  "Validates TOML syntax, settings and environment variable substitution.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configTestCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	if serverURL == "" {
		if err := config.WriteDefault(path); err != nil {
			return err
		}
	} else {
		cfg := config.Default()
		cfg.Server.URL = serverURL
		if errs := cfg.Validate(); len(errs) > 0 {
			return &config.ConfigError{Errors: errs}
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := cfg.Write(path); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		path = found
	}

	fmt.Fprintf(out, "Validating %s...\n\n", path)
	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return errors.New("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}
	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s (timeout %s)\n", cfg.Server.URL, cfg.Server.Timeout)
	if cfg.Server.MinVersion != "" {
		fmt.Fprintf(w, "  Requires:   %s\n", cfg.Server.MinVersion)
	}
	fmt.Fprintf(w, "  State:      %s\n", cfg.State.Path)
	logTo := "stderr"
	if cfg.Log.File != "" {
		logTo = cfg.Log.File
	}
	fmt.Fprintf(w, "  Log:        %s (%s)\n", cfg.Log.Level, logTo)
	fmt.Fprintf(w, "  Activity:   poll every %s, %d history records\n", cfg.Activity.PollInterval, cfg.Activity.HistorySize)
	fmt.Fprintf(w, "  Library:    %d per page\n", cfg.Library.PageSize)
	fmt.Fprintf(w, "  Discover:   %.1f pages/s\n", cfg.Discover.PagesPerSecond)
}
