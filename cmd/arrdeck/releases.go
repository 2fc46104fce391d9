package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/api"
)

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Interactive indexer search and grabs",
}

var releasesSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search indexers for releases of a library title",
	Long: `Search the server's indexers for releases. Rejected releases are shown
with the reason.

Examples:
  arrdeck releases search --movie 42
  arrdeck releases search --series 7 --season 2
  arrdeck releases search --query "some.release.name"`,
	Args: cobra.NoArgs,
	RunE: runReleasesSearchCmd,
}

var releasesGrabCmd = &cobra.Command{
	Use:   "grab <guid>",
	Short: "Send a release to the download client",
	Long: `Send a release found by 'releases search' to the download client.

Example:
  arrdeck releases grab 'https://indexer/details/abc' --indexer 3 --movie 42`,
	Args: cobra.ExactArgs(1),
	RunE: runReleasesGrabCmd,
}

func init() {
	rootCmd.AddCommand(releasesCmd)
	releasesCmd.AddCommand(releasesSearchCmd, releasesGrabCmd)

	releasesSearchCmd.Flags().Int64("movie", 0, "Movie ID")
	releasesSearchCmd.Flags().Int64("series", 0, "Series ID")
	releasesSearchCmd.Flags().Int("season", 0, "Season number (with --series)")
	releasesSearchCmd.Flags().Int64("episode", 0, "Episode ID")
	releasesSearchCmd.Flags().StringP("query", "q", "", "Free text query")
	releasesSearchCmd.Flags().Bool("approved", false, "Hide rejected releases")
	releasesSearchCmd.MarkFlagsMutuallyExclusive("movie", "series")

	releasesGrabCmd.Flags().Int64("indexer", 0, "Indexer ID the release came from")
	releasesGrabCmd.Flags().String("url", "", "Download URL")
	releasesGrabCmd.Flags().String("title", "", "Release title")
	releasesGrabCmd.Flags().Int64("movie", 0, "Movie ID")
	releasesGrabCmd.Flags().Int64("series", 0, "Series ID")
	releasesGrabCmd.Flags().Int64Slice("episodes", nil, "Episode IDs")
	_ = releasesGrabCmd.MarkFlagRequired("indexer")
}

func runReleasesSearchCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	var rq api.ReleaseQuery
	rq.MovieID, _ = flags.GetInt64("movie")
	rq.SeriesID, _ = flags.GetInt64("series")
	rq.SeasonNumber, _ = flags.GetInt("season")
	rq.EpisodeID, _ = flags.GetInt64("episode")
	rq.Query, _ = flags.GetString("query")
	if rq.MovieID == 0 && rq.SeriesID == 0 && rq.EpisodeID == 0 && rq.Query == "" {
		return errors.New("give --movie, --series, --episode or --query")
	}
	if rq.SeasonNumber != 0 && rq.SeriesID == 0 {
		return errors.New("--season needs --series")
	}

	releases, err := app.client.SearchReleases(cmd.Context(), rq)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if approvedOnly, _ := flags.GetBool("approved"); approvedOnly {
		kept := releases[:0]
		for _, r := range releases {
			if r.Approved {
				kept = append(kept, r)
			}
		}
		releases = kept
	}

	if jsonOutput {
		return printJSON(out, releases)
	}
	printReleases(out, releases)
	return nil
}

func printReleases(w io.Writer, releases []api.Release) {
	if len(releases) == 0 {
		fmt.Fprintln(w, "No releases found")
		return
	}
	fmt.Fprintf(w, "Found %d releases:\n\n", len(releases))
	fmt.Fprintf(w, "  %-4s %-50s %-14s %9s %-12s %5s\n", "#", "TITLE", "QUALITY", "SIZE", "INDEXER", "SCORE")
	rule(w, 100)
	for i, r := range releases {
		fmt.Fprintf(w, "  %-4d %-50s %-14s %9s %-12s %5d\n",
			i+1, truncate(r.Title, 50), quality.Parse(r.Quality), formatSize(r.Size), truncate(r.Indexer, 12), r.Score)
		if !r.Approved && len(r.Rejections) > 0 {
			fmt.Fprintf(w, "       rejected: %s\n", strings.Join(r.Rejections, "; "))
		}
		fmt.Fprintf(w, "       guid: %s  indexer: %d\n", r.GUID, r.IndexerID)
	}
}

func runReleasesGrabCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	flags := cmd.Flags()

	g := api.GrabRequest{GUID: args[0]}
	g.IndexerID, _ = flags.GetInt64("indexer")
	g.DownloadURL, _ = flags.GetString("url")
	g.Title, _ = flags.GetString("title")
	g.MovieID, _ = flags.GetInt64("movie")
	g.SeriesID, _ = flags.GetInt64("series")
	g.EpisodeIDs, _ = flags.GetInt64Slice("episodes")
	if len(g.EpisodeIDs) > 0 && g.SeriesID == 0 {
		return errors.New("--episodes needs --series")
	}

	res, err := app.client.GrabRelease(cmd.Context(), g)
	if err != nil {
		return fmt.Errorf("grab failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, res)
	}
	fmt.Fprintf(out, "Grabbed: %s (%s)\n", res.DownloadID, res.Status)
	if res.Client != "" {
		fmt.Fprintf(out, "Client:  %s\n", res.Client)
	}
	return nil
}
