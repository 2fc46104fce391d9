package main

import (
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/pkg/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Server version, health and disk space",
	Long: `Show the server version, health warnings and disk space.

The server version is checked against server.min_version from the config.`,
	Args: cobra.NoArgs,
	RunE: runStatusCmd,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusReport is the --json shape of the status command.
type statusReport struct {
	Server     string            `json:"server"`
	Status     *api.SystemStatus `json:"status"`
	Compatible bool              `json:"compatible"`
	Health     []api.HealthCheck `json:"health"`
	Disks      []api.DiskSpace   `json:"disks"`
}

func runStatusCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var r statusReport
	r.Server = app.client.BaseURL()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := app.client.Status(gctx)
		r.Status = s
		return err
	})
	g.Go(func() error {
		h, err := app.client.Health(gctx)
		r.Health = h
		return err
	})
	g.Go(func() error {
		d, err := app.client.DiskSpace(gctx)
		r.Disks = d
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}

	verErr := checkServerVersion(r.Status.Version, app.cfg.Server.MinVersion)
	r.Compatible = verErr == nil
	if verErr != nil {
		app.log.Warn("server version check failed", "version", r.Status.Version, "error", verErr)
	}

	if jsonOutput {
		return printJSON(out, r)
	}
	printStatus(out, &r, verErr)
	return nil
}

// checkServerVersion reports whether version satisfies constraint. An empty
// constraint accepts anything.
func checkServerVersion(version, constraint string) error {
	if constraint == "" {
		return nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("unparseable server version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("server version %s does not satisfy %s", v, constraint)
	}
	return nil
}

func printStatus(w io.Writer, r *statusReport, verErr error) {
	fmt.Fprintf(w, "Server:   %s\n", r.Server)
	fmt.Fprintf(w, "Version:  %s\n", r.Status.Version)
	if !r.Status.StartTime.IsZero() {
		fmt.Fprintf(w, "Started:  %s\n", formatTimeAgo(r.Status.StartTime))
	}
	if verErr != nil {
		fmt.Fprintf(w, "Warning:  %v\n", verErr)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Health")
	if len(r.Health) == 0 {
		fmt.Fprintln(w, "  No issues")
	}
	for _, h := range r.Health {
		fmt.Fprintf(w, "  %-8s %-16s %s\n", h.Type, h.Source, h.Message)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Disk Space")
	if len(r.Disks) == 0 {
		fmt.Fprintln(w, "  No root folders")
		return
	}
	fmt.Fprintf(w, "  %-40s %10s %10s\n", "PATH", "FREE", "TOTAL")
	rule(w, 62)
	for _, d := range r.Disks {
		fmt.Fprintf(w, "  %-40s %10s %10s\n", truncate(d.Path, 40), formatSize(d.FreeSpace), formatSize(d.TotalSpace))
	}
}
