package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/manualimport"
)

var importCmd = &cobra.Command{
	Use:   "import <folder>",
	Short: "Manually import files from a folder",
	Long: `List the importable files the server finds in a folder, map them to
library titles and import them.

Files the server already matched keep their target. --movie assigns the
rest to a movie; --series matches the rest to episodes by file name.
Files the server rejected are skipped unless --force is given.

Examples:
  arrdeck import /downloads/complete/Some.Movie.2021.1080p --dry-run
  arrdeck import /downloads/complete/Some.Movie.2021.1080p --movie 42
  arrdeck import /downloads/complete/Show.S02 --series 7 --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("download-id", "", "Limit to files of this download")
	importCmd.Flags().Int64("movie", 0, "Assign unmatched files to this movie")
	importCmd.Flags().Int64("series", 0, "Match unmatched files to episodes of this series")
	importCmd.Flags().Bool("copy", false, "Copy files instead of moving them")
	importCmd.Flags().Bool("force", false, "Import files the server rejected")
	importCmd.Flags().StringSlice("exclude", nil, "Skip files matching these glob patterns")
	importCmd.Flags().Bool("dry-run", false, "Show the plan without importing")
	importCmd.MarkFlagsMutuallyExclusive("movie", "series")
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	downloadID, _ := flags.GetString("download-id")
	movieID, _ := flags.GetInt64("movie")
	seriesID, _ := flags.GetInt64("series")
	useCopy, _ := flags.GetBool("copy")
	force, _ := flags.GetBool("force")
	excludes, _ := flags.GetStringSlice("exclude")
	dryRun, _ := flags.GetBool("dry-run")

	candidates, err := app.client.ManualImportCandidates(ctx, args[0], downloadID)
	if err != nil {
		return fmt.Errorf("failed to scan folder: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Fprintln(out, "No importable files found")
		return nil
	}

	sels := manualimport.FromCandidates(candidates)
	for i := range sels {
		s := &sels[i]
		if force && len(s.Candidate.Rejections) > 0 {
			s.Selected, s.Force = true, true
		}
		if excluded(s.Name(), excludes) {
			s.Selected = false
		}
	}

	switch {
	case movieID != 0:
		manualimport.AssignMovie(sels, movieID)
	case seriesID != 0:
		episodes, err := app.client.Episodes(ctx, seriesID, -1)
		if err != nil {
			return fmt.Errorf("failed to fetch episodes: %w", err)
		}
		for _, name := range manualimport.AssignSeries(sels, seriesID, episodes) {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: no matching episode\n", name)
		}
	}

	mode := manualimport.ModeMove
	if useCopy {
		mode = manualimport.ModeCopy
	}
	req, err := manualimport.Build(sels, mode)
	if err != nil {
		if !jsonOutput {
			printImportPlan(out, sels)
		}
		return err
	}

	if dryRun {
		if jsonOutput {
			return printJSON(out, req)
		}
		printImportPlan(out, sels)
		fmt.Fprintf(out, "\nDry run: %d files would be imported (%s)\n", len(req.Files), mode)
		return nil
	}

	res, err := app.client.ManualImport(ctx, req)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, res)
	}
	printImportPlan(out, sels)
	fmt.Fprintf(out, "\nImported %d files", res.Imported)
	if res.Failed > 0 {
		fmt.Fprintf(out, ", %d failed", res.Failed)
	}
	fmt.Fprintln(out)
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  ! %s\n", e)
	}
	return nil
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func printImportPlan(w io.Writer, sels []manualimport.Selection) {
	fmt.Fprintf(w, "  %-3s %-48s %-14s %9s %s\n", "", "FILE", "QUALITY", "SIZE", "TARGET")
	rule(w, 96)
	for i := range sels {
		s := &sels[i]
		mark := "[ ]"
		if s.Selected {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %-3s %-48s %-14s %9s %s\n",
			mark, truncate(s.Name(), 48), s.ResolvedQuality(), formatSize(s.Candidate.Size), describeTarget(s))
		if len(s.Candidate.Rejections) > 0 {
			fmt.Fprintf(w, "      rejected: %s\n", strings.Join(s.Candidate.Rejections, "; "))
		}
	}
}

func describeTarget(s *manualimport.Selection) string {
	switch {
	case s.MovieID != 0:
		return fmt.Sprintf("movie #%d", s.MovieID)
	case s.SeriesID != 0 && len(s.EpisodeIDs) > 0:
		return fmt.Sprintf("series #%d S%02d (%d ep)", s.SeriesID, s.Season, len(s.EpisodeIDs))
	case s.SeriesID != 0:
		return fmt.Sprintf("series #%d (no episode)", s.SeriesID)
	}
	return "-"
}
