package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/discover"
	"github.com/vmunix/arrdeck/pkg/api"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [trending|popular|upcoming]",
	Short: "Browse discover lists",
	Long: `Browse trending, popular or upcoming titles. Titles already in the
library are marked.

Examples:
  arrdeck discover                      # Trending movies
  arrdeck discover popular --type tv    # Popular series
  arrdeck discover upcoming --limit 50`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(discover.ListTrending), string(discover.ListPopular), string(discover.ListUpcoming)},
	RunE:      runDiscoverCmd,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies and series metadata",
	Long: `Search movie and series metadata by title.

Examples:
  arrdeck search "the matrix"
  arrdeck search severance --type tv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(searchCmd)

	discoverCmd.Flags().StringP("type", "t", "movie", "Media type (movie, tv)")
	discoverCmd.Flags().IntP("limit", "n", 20, "Number of titles to show")

	searchCmd.Flags().StringP("type", "t", "", "Restrict to a media type (movie, tv)")
	searchCmd.Flags().IntP("limit", "n", 20, "Number of results to show")
}

func runDiscoverCmd(cmd *cobra.Command, args []string) error {
	list := discover.ListTrending
	if len(args) > 0 {
		list = discover.List(strings.ToLower(args[0]))
	}
	typeFlag, _ := cmd.Flags().GetString("type")
	mt, err := parseMediaType(typeFlag)
	if err != nil {
		return err
	}
	limit, _ := cmd.Flags().GetInt("limit")
	return runFeed(cmd, list, mt, "", limit)
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	var mt api.MediaType
	if typeFlag, _ := cmd.Flags().GetString("type"); typeFlag != "" {
		var err error
		if mt, err = parseMediaType(typeFlag); err != nil {
			return err
		}
	}
	limit, _ := cmd.Flags().GetInt("limit")
	return runFeed(cmd, discover.ListSearch, mt, strings.Join(args, " "), limit)
}

func runFeed(cmd *cobra.Command, list discover.List, mt api.MediaType, query string, limit int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if limit < 1 {
		return fmt.Errorf("invalid --limit %d: %w", limit, discover.ErrInvalidLimit)
	}
	pages, err := discover.Pages(app.client, list, mt, query)
	if err != nil {
		return err
	}
	keys, err := libraryKeys(ctx, app.client)
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}

	feed := discover.NewFeed(pages,
		discover.WithPagesPerSecond(app.cfg.Discover.PagesPerSecond),
		discover.WithLibrary(keys),
		discover.WithLogger(app.log),
	)
	items, err := feed.Take(ctx, limit)
	if err != nil && len(items) == 0 {
		return fmt.Errorf("failed to fetch %s: %w", list, err)
	}
	if err != nil {
		app.log.Warn("discover stopped early", "list", list, "page", feed.Page(), "error", err)
	}
	if len(items) > limit {
		items = items[:limit]
	}

	if jsonOutput {
		return printJSON(out, items)
	}
	printDiscoverItems(out, items)
	if !feed.Done() {
		fmt.Fprintf(out, "\nMore results available (read %d pages); use --limit to see more.\n", feed.Page())
	}
	return nil
}

// libraryKeys lists every title already in the library.
func libraryKeys(ctx context.Context, c *api.Client) ([]discover.Key, error) {
	var (
		movies []api.Movie
		series []api.Series
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movies, err = c.Movies(gctx, api.MovieListQuery{})
		return err
	})
	g.Go(func() error {
		var err error
		series, err = c.SeriesList(gctx, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	keys := make([]discover.Key, 0, len(movies)+len(series))
	for _, m := range movies {
		keys = append(keys, discover.Key{MediaType: api.MediaTypeMovie, TMDBID: m.TMDBID})
	}
	for _, s := range series {
		if s.TMDBID != 0 {
			keys = append(keys, discover.Key{MediaType: api.MediaTypeSeries, TMDBID: s.TMDBID})
		}
	}
	return keys, nil
}

func printDiscoverItems(w io.Writer, items []api.DiscoverItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results")
		return
	}
	fmt.Fprintf(w, "  %-8s %-6s %-44s %-4s %5s %s\n", "TMDB", "TYPE", "TITLE", "YEAR", "VOTE", "LIBRARY")
	rule(w, 78)
	for _, it := range items {
		year := "-"
		if it.Year > 0 {
			year = fmt.Sprintf("%d", it.Year)
		}
		inLib := ""
		if it.InLibrary {
			inLib = "yes"
		}
		fmt.Fprintf(w, "  %-8d %-6s %-44s %-4s %5.1f %s\n",
			it.TMDBID, mediaLabel(it.MediaType), truncate(it.Title, 44), year, it.VoteAverage, inLib)
	}
}
