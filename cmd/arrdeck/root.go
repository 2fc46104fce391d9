package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/config"
	"github.com/vmunix/arrdeck/internal/logging"
	"github.com/vmunix/arrdeck/internal/state"
	"github.com/vmunix/arrdeck/pkg/api"
)

var version = "dev"

var (
	serverURL  string
	jsonOutput bool
	configPath string
	verbose    bool
)

// env is what every command talks through once the root pre-run has resolved
// configuration, logging, local state and the API client.
type env struct {
	cfg       *config.Config
	cfgPath   string
	log       *slog.Logger
	logCloser io.Closer
	state     *state.DB
	creds     *state.Credentials
	client    *api.Client
}

var app *env

// skipSetup marks commands that must run without config, state or a client.
const skipSetup = "arrdeck/skip-setup"

var rootCmd = &cobra.Command{
	Use:   "arrdeck",
	Short: "Command-line deck for a self-hosted media library server",
	Long: `arrdeck - command-line deck for a self-hosted media library server

Browse and manage the movie and series library, discover new titles,
watch downloads, search indexers and run manual imports.

Configuration is read from --config, $ARRDECK_CONFIG, ./arrdeck.toml,
$XDG_CONFIG_HOME/arrdeck/config.toml or /etc/arrdeck/config.toml.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(os.Stderr, "Not logged in or session expired. Run 'arrdeck login' first.")
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server API URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrdeck {{.Version}}\n")
}

func needsSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipSetup] == "true" {
			return false
		}
	}
	return true
}

func setup(cmd *cobra.Command, _ []string) error {
	if !needsSetup(cmd) {
		return nil
	}

	cfg, path, err := config.Resolve(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
		if errs := cfg.Validate(); len(errs) > 0 {
			return fmt.Errorf("load config: %w", &config.ConfigError{Path: path, Errors: errs})
		}
	}

	logger, closer, err := logging.New(cfg.Log, verbose)
	if err != nil {
		return err
	}

	db, err := state.Open(cmd.Context(), cfg.State.Path, logger)
	if err != nil {
		_ = closer.Close()
		return err
	}

	creds := db.Credentials(cfg.Server.URL)
	client := api.New(cfg.Server.URL,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Server.Timeout}),
		api.WithLogger(logger),
		api.WithTokenStore(creds),
		api.WithUserAgent("arrdeck/"+version),
		api.WithUnauthorizedHandler(func() {
			logger.Warn("server rejected session, stored credentials cleared", "server", cfg.Server.URL)
		}),
	)

	logger.Debug("setup complete", "config", path, "server", cfg.Server.URL, "state", cfg.State.Path)
	app = &env{
		cfg:       cfg,
		cfgPath:   path,
		log:       logger,
		logCloser: closer,
		state:     db,
		creds:     creds,
		client:    client,
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if app == nil {
		return nil
	}
	err := errors.Join(app.state.Close(), app.logCloser.Close())
	app = nil
	return err
}
