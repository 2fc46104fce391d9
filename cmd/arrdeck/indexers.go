package main

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/indexer"
	"github.com/vmunix/arrdeck/pkg/api"
	"github.com/vmunix/arrdeck/pkg/newznab"
)

var indexersCmd = &cobra.Command{
	Use:   "indexers",
	Short: "Manage Torznab/Newznab indexers",
}

var indexersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured indexers",
	Args:  cobra.NoArgs,
	RunE:  runIndexersListCmd,
}

var indexersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an indexer",
	Long: `Validate and add an indexer. With --probe the indexer is asked for its
capabilities first and the configured categories are checked against them.

Examples:
  arrdeck indexers add --name geek --implementation newznab --url https://api.nzbgeek.info --api-key KEY --categories 2000,5000
  arrdeck indexers add --name jackett --url http://jackett:9117/api/v2.0/indexers/all/results/torznab --api-key KEY --probe`,
	Args: cobra.NoArgs,
	RunE: runIndexersAddCmd,
}

var indexersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an indexer",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexersDeleteCmd,
}

var indexersTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Ask the server to test a saved indexer",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexersTestCmd,
}

var indexersProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Query an indexer directly without saving it",
	Long: `Query an indexer's capabilities directly from this machine, without
going through the server. With --query also run a search.

Examples:
  arrdeck indexers probe --url https://indexer.example --api-key KEY
  arrdeck indexers probe --url https://indexer.example --api-key KEY --query "the matrix"`,
	Args: cobra.NoArgs,
	RunE: runIndexersProbeCmd,
}

func init() {
	rootCmd.AddCommand(indexersCmd)
	indexersCmd.AddCommand(indexersListCmd, indexersAddCmd, indexersDeleteCmd, indexersTestCmd, indexersProbeCmd)

	for _, c := range []*cobra.Command{indexersAddCmd, indexersProbeCmd} {
		c.Flags().String("name", "", "Indexer name")
		c.Flags().String("url", "", "Torznab/Newznab URL")
		c.Flags().String("api-key", "", "API key")
		c.Flags().String("implementation", "torznab", "torznab or newznab")
		c.Flags().IntSlice("categories", nil, "Category IDs")
		c.Flags().Int("priority", indexer.DefaultPriority, "Priority (1 is preferred)")
	}
	indexersAddCmd.Flags().Bool("disabled", false, "Add disabled")
	indexersAddCmd.Flags().Bool("no-rss", false, "Disable RSS sync")
	indexersAddCmd.Flags().Bool("no-search", false, "Disable searching")
	indexersAddCmd.Flags().Bool("probe", false, "Probe the indexer before saving")
	indexersProbeCmd.Flags().StringP("query", "q", "", "Run a search with this query")
	indexersProbeCmd.Flags().Int("limit", 20, "Search result limit")
}

func indexerFromFlags(cmd *cobra.Command) api.Indexer {
	flags := cmd.Flags()
	ix := api.Indexer{Enabled: true, EnableRSS: true, EnableSearch: true}
	ix.Name, _ = flags.GetString("name")
	ix.URL, _ = flags.GetString("url")
	ix.APIKey, _ = flags.GetString("api-key")
	ix.Implementation, _ = flags.GetString("implementation")
	ix.Categories, _ = flags.GetIntSlice("categories")
	ix.Priority, _ = flags.GetInt("priority")
	if flags.Lookup("disabled") != nil {
		disabled, _ := flags.GetBool("disabled")
		noRSS, _ := flags.GetBool("no-rss")
		noSearch, _ := flags.GetBool("no-search")
		ix.Enabled, ix.EnableRSS, ix.EnableSearch = !disabled, !noRSS, !noSearch
	}
	indexer.Normalize(&ix)
	return ix
}

func runIndexersListCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	indexers, err := app.client.Indexers(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch indexers: %w", err)
	}
	slices.SortStableFunc(indexers, func(a, b api.Indexer) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		return strings.Compare(a.Name, b.Name)
	})

	if jsonOutput {
		return printJSON(out, indexers)
	}
	printIndexers(out, indexers)
	return nil
}

func printIndexers(w io.Writer, indexers []api.Indexer) {
	if len(indexers) == 0 {
		fmt.Fprintln(w, "No indexers configured")
		return
	}
	fmt.Fprintf(w, "  %-4s %-20s %-8s %-8s %-4s %-7s %-3s %-6s\n",
		"ID", "NAME", "TYPE", "PROTO", "PRIO", "ENABLED", "RSS", "SEARCH")
	rule(w, 68)
	for _, ix := range indexers {
		fmt.Fprintf(w, "  %-4d %-20s %-8s %-8s %-4d %-7s %-3s %-6s\n",
			ix.ID, truncate(ix.Name, 20), ix.Implementation, ix.Protocol, ix.Priority,
			yesNo(ix.Enabled), yesNo(ix.EnableRSS), yesNo(ix.EnableSearch))
	}
}

func runIndexersAddCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ix := indexerFromFlags(cmd)
	if err := indexer.Validate(ix); err != nil {
		return err
	}
	if probe, _ := cmd.Flags().GetBool("probe"); probe {
		res, err := indexer.Probe(ctx, ix, app.log, newznab.WithHTTPClient(probeHTTPClient()))
		if err != nil {
			return err
		}
		if len(res.UnknownCategories) > 0 {
			return fmt.Errorf("%w: %s does not offer categories %v", indexer.ErrInvalid, ix.Name, res.UnknownCategories)
		}
		if !jsonOutput {
			fmt.Fprintf(out, "Probed %s: %s\n", ix.Name, res.Caps.Title)
		}
	}

	created, err := app.client.AddIndexer(ctx, ix)
	if err != nil {
		return fmt.Errorf("failed to add indexer: %w", err)
	}
	if jsonOutput {
		return printJSON(out, created)
	}
	fmt.Fprintf(out, "Added indexer %s as #%d\n", created.Name, created.ID)
	return nil
}

func runIndexersDeleteCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := app.client.DeleteIndexer(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete indexer %d: %w", id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted indexer #%d\n", id)
	return nil
}

func runIndexersTestCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	indexers, err := app.client.Indexers(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch indexers: %w", err)
	}
	i := slices.IndexFunc(indexers, func(ix api.Indexer) bool { return ix.ID == id })
	if i < 0 {
		return fmt.Errorf("indexer %d: %w", id, api.ErrNotFound)
	}

	res, err := app.client.TestIndexer(ctx, indexers[i])
	if err != nil {
		return fmt.Errorf("failed to test indexer: %w", err)
	}
	if jsonOutput {
		return printJSON(out, res)
	}
	if !res.Success {
		return fmt.Errorf("indexer %s failed: %s", indexers[i].Name, res.Message)
	}
	fmt.Fprintf(out, "Indexer %s OK\n", indexers[i].Name)
	return nil
}

// probeResult is the --json shape of indexers probe.
type probeResult struct {
	Caps              *newznab.Caps     `json:"caps"`
	UnknownCategories []int             `json:"unknownCategories,omitempty"`
	Releases          []newznab.Release `json:"releases,omitempty"`
}

func runIndexersProbeCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ix := indexerFromFlags(cmd)
	if ix.Name == "" {
		ix.Name = "probe"
	}
	hc := probeHTTPClient()
	res, err := indexer.Probe(ctx, ix, app.log, newznab.WithHTTPClient(hc))
	if err != nil {
		return err
	}
	pr := probeResult{Caps: res.Caps, UnknownCategories: res.UnknownCategories}

	if query, _ := cmd.Flags().GetString("query"); query != "" {
		limit, _ := cmd.Flags().GetInt("limit")
		client := newznab.NewClient(ix.Name, ix.URL, ix.APIKey, newznab.WithHTTPClient(hc), newznab.WithLogger(app.log))
		pr.Releases, err = client.Search(ctx, query, ix.Categories, limit)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
	}

	if jsonOutput {
		return printJSON(out, pr)
	}
	printCaps(out, res.Caps, res.UnknownCategories)
	if pr.Releases != nil || cmd.Flags().Changed("query") {
		fmt.Fprintln(out)
		printNewznabReleases(out, pr.Releases)
	}
	return nil
}

func probeHTTPClient() *http.Client {
	return &http.Client{Timeout: app.cfg.Server.Timeout}
}

func printCaps(w io.Writer, caps *newznab.Caps, unknown []int) {
	title := caps.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "Indexer:  %s", title)
	if caps.Version != "" {
		fmt.Fprintf(w, " %s", caps.Version)
	}
	fmt.Fprintln(w)
	if caps.MaxLimit > 0 {
		fmt.Fprintf(w, "Limit:    %d\n", caps.MaxLimit)
	}
	var searches []string
	for _, kind := range []string{"search", "tv-search", "movie-search"} {
		if caps.SupportsSearch(kind) {
			searches = append(searches, kind)
		}
	}
	fmt.Fprintf(w, "Searches: %s\n", strings.Join(searches, ", "))
	if len(unknown) > 0 {
		fmt.Fprintf(w, "Warning:  categories %v are not offered\n", unknown)
	}
	fmt.Fprintln(w, "\nCategories")
	for _, c := range caps.Categories {
		fmt.Fprintf(w, "  %-6d %s\n", c.ID, c.Name)
		for _, s := range c.Subcats {
			fmt.Fprintf(w, "    %-6d %s\n", s.ID, s.Name)
		}
	}
}

func printNewznabReleases(w io.Writer, releases []newznab.Release) {
	if len(releases) == 0 {
		fmt.Fprintln(w, "No releases found")
		return
	}
	fmt.Fprintf(w, "  %-60s %10s %s\n", "TITLE", "SIZE", "AGE")
	rule(w, 86)
	for _, r := range releases {
		fmt.Fprintf(w, "  %-60s %10s %s\n", truncate(r.Title, 60), formatSize(r.Size), formatTimeAgo(r.PublishDate))
	}
}
