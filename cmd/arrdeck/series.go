package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/series"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Series detail and season/episode monitoring",
}

var seriesShowCmd = &cobra.Command{
	Use:   "show <series-id>",
	Short: "Show seasons, or the episodes of one season",
	Long: `Show a series with per-season file counts. With --season, list that
season's episodes.

Examples:
  arrdeck series show 12
  arrdeck series show 12 --season 2`,
	Args: cobra.ExactArgs(1),
	RunE: runSeriesShowCmd,
}

var seriesMonitorCmd = &cobra.Command{
	Use:   "monitor <series-id>",
	Short: "Monitor or unmonitor a season or episode",
	Long: `Monitor or unmonitor a whole season or a single episode.

Examples:
  arrdeck series monitor 12 --season 3
  arrdeck series monitor 12 --season 0 --off
  arrdeck series monitor 12 --episode 4411 --off`,
	Args: cobra.ExactArgs(1),
	RunE: runSeriesMonitorCmd,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.AddCommand(seriesShowCmd, seriesMonitorCmd)

	seriesShowCmd.Flags().IntP("season", "s", -1, "Season to list episodes for")

	seriesMonitorCmd.Flags().IntP("season", "s", -1, "Season number")
	seriesMonitorCmd.Flags().Int64P("episode", "e", 0, "Episode ID")
	seriesMonitorCmd.Flags().Bool("off", false, "Unmonitor instead")
	seriesMonitorCmd.MarkFlagsMutuallyExclusive("season", "episode")
	seriesMonitorCmd.MarkFlagsOneRequired("season", "episode")
}

func runSeriesShowCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	seasonNum, _ := cmd.Flags().GetInt("season")

	detail, err := series.Load(ctx, app.client, id, app.log)
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}

	if seasonNum >= 0 {
		season, ok := detail.Season(seasonNum)
		if !ok {
			return fmt.Errorf("%w: %d", series.ErrUnknownSeason, seasonNum)
		}
		if jsonOutput {
			return printJSON(out, season)
		}
		printSeason(out, season)
		return nil
	}

	if jsonOutput {
		s := detail.Series()
		return printJSON(out, map[string]any{
			"series":  s,
			"seasons": detail.Seasons(),
		})
	}
	printSeriesDetail(out, detail)
	return nil
}

func printSeriesDetail(w io.Writer, d *series.Detail) {
	s := d.Series()
	files, episodes := d.Totals()
	fmt.Fprintf(w, "%s (%d)  #%d\n", s.Title, s.Year, s.ID)
	if s.Network != "" {
		fmt.Fprintf(w, "Network:   %s\n", s.Network)
	}
	fmt.Fprintf(w, "Status:    %s\n", s.Status)
	fmt.Fprintf(w, "Monitored: %s\n", yesNo(s.Monitored))
	fmt.Fprintf(w, "Episodes:  %d/%d\n\n", files, episodes)

	fmt.Fprintf(w, "  %-10s %-9s %-9s %s\n", "SEASON", "MONITORED", "EPISODES", "COMPLETE")
	rule(w, 42)
	for _, season := range d.Seasons() {
		name := fmt.Sprintf("Season %d", season.Number)
		if season.Number == 0 {
			name = "Specials"
		}
		fmt.Fprintf(w, "  %-10s %-9s %-9s %.0f%%\n",
			name, yesNo(season.Monitored),
			fmt.Sprintf("%d/%d", season.FileCount(), len(season.Episodes)),
			season.Percent())
	}
}

func printSeason(w io.Writer, season series.Season) {
	fmt.Fprintf(w, "Season %d  (%d/%d, monitored: %s)\n\n",
		season.Number, season.FileCount(), len(season.Episodes), yesNo(season.Monitored))
	fmt.Fprintf(w, "  %-8s %-4s %-40s %-10s %-3s %s\n", "ID", "EP", "TITLE", "AIRED", "MON", "FILE")
	rule(w, 76)
	for _, e := range season.Episodes {
		aired := e.AirDate
		if aired == "" {
			aired = "TBA"
		}
		file := "-"
		if e.EpisodeFile != nil {
			file = e.EpisodeFile.Quality
		} else if e.HasFile {
			file = "yes"
		}
		fmt.Fprintf(w, "  %-8d %-4d %-40s %-10s %-3s %s\n",
			e.ID, e.EpisodeNumber, truncate(e.Title, 40), aired, yesNo(e.Monitored), file)
	}
}

func runSeriesMonitorCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	seasonNum, _ := cmd.Flags().GetInt("season")
	episodeID, _ := cmd.Flags().GetInt64("episode")
	off, _ := cmd.Flags().GetBool("off")
	monitored := !off

	detail, err := series.Load(ctx, app.client, id, app.log)
	if err != nil {
		return fmt.Errorf("failed to load series: %w", err)
	}

	state := "Monitored"
	if off {
		state = "Unmonitored"
	}
	switch {
	case cmd.Flags().Changed("episode"):
		if episodeID <= 0 {
			return errors.New("--episode must be a positive ID")
		}
		if err := detail.SetEpisodeMonitored(ctx, episodeID, monitored); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s episode #%d of %s\n", state, episodeID, detail.Series().Title)
	default:
		if seasonNum < 0 {
			return errors.New("--season must be 0 or greater")
		}
		if err := detail.SetSeasonMonitored(ctx, seasonNum, monitored); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s season %d of %s\n", state, seasonNum, detail.Series().Title)
	}
	return nil
}
