package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/filter"
	"github.com/vmunix/arrdeck/pkg/api"
)

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Manage saved custom library filters",
}

var filtersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved filters",
	Args:  cobra.NoArgs,
	RunE:  runFiltersListCmd,
}

var filtersSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Create or replace a saved filter",
	Long: `Create or replace a saved filter. Conditions you leave out match
anything.

Examples:
  arrdeck filters save "missing 90s" --monitored --has-file=false --year-min 1990 --year-max 1999
  arrdeck filters save "upgrades" --type tv --cutoff-met=false`,
	Args: cobra.ExactArgs(1),
	RunE: runFiltersSaveCmd,
}

var filtersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved filter",
	Args:  cobra.ExactArgs(1),
	RunE:  runFiltersDeleteCmd,
}

func init() {
	rootCmd.AddCommand(filtersCmd)
	filtersCmd.AddCommand(filtersListCmd, filtersSaveCmd, filtersDeleteCmd)

	filtersListCmd.Flags().StringP("type", "t", "", "Only filters for a media type (movie, tv)")

	filtersSaveCmd.Flags().StringP("type", "t", "movie", "Media type (movie, tv)")
	filtersSaveCmd.Flags().Bool("monitored", false, "Require monitored state")
	filtersSaveCmd.Flags().Bool("has-file", false, "Require file state")
	filtersSaveCmd.Flags().Bool("cutoff-met", false, "Require cutoff state")
	filtersSaveCmd.Flags().Int64("profile", 0, "Require quality profile ID")
	filtersSaveCmd.Flags().Int("year-min", 0, "Earliest year")
	filtersSaveCmd.Flags().Int("year-max", 0, "Latest year")

	filtersDeleteCmd.Flags().StringP("type", "t", "movie", "Media type (movie, tv)")
}

func runFiltersListCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var mt api.MediaType
	if s, _ := cmd.Flags().GetString("type"); s != "" {
		var err error
		if mt, err = parseMediaType(s); err != nil {
			return err
		}
	}

	filters, err := app.state.Filters().List(cmd.Context(), mt)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(out, filters)
	}
	printFilters(out, filters)
	return nil
}

func printFilters(w io.Writer, filters []*filter.CustomFilter) {
	if len(filters) == 0 {
		fmt.Fprintln(w, "No saved filters")
		return
	}
	fmt.Fprintf(w, "  %-24s %-6s %s\n", "NAME", "TYPE", "CONDITIONS")
	rule(w, 70)
	for _, f := range filters {
		fmt.Fprintf(w, "  %-24s %-6s %s\n", truncate(f.Name, 24), mediaLabel(f.MediaType), describeFilter(f))
	}
}

// describeFilter renders the set conditions of f, "any" when there are none.
func describeFilter(f *filter.CustomFilter) string {
	var parts []string
	boolPart := func(name string, v *bool) {
		if v == nil {
			return
		}
		if *v {
			parts = append(parts, name)
		} else {
			parts = append(parts, "not "+name)
		}
	}
	boolPart("monitored", f.Monitored)
	boolPart("has file", f.HasFile)
	boolPart("cutoff met", f.CutoffMet)
	if f.QualityProfileID != nil {
		parts = append(parts, fmt.Sprintf("profile %d", *f.QualityProfileID))
	}
	switch {
	case f.YearMin != nil && f.YearMax != nil:
		parts = append(parts, fmt.Sprintf("%d-%d", *f.YearMin, *f.YearMax))
	case f.YearMin != nil:
		parts = append(parts, fmt.Sprintf("from %d", *f.YearMin))
	case f.YearMax != nil:
		parts = append(parts, fmt.Sprintf("until %d", *f.YearMax))
	}
	if len(parts) == 0 {
		return "any"
	}
	return strings.Join(parts, ", ")
}

func runFiltersSaveCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}

	f := filterFromFlags(cmd)
	f.Name = strings.TrimSpace(args[0])
	f.MediaType = mt

	store := app.state.Filters()
	existing, err := store.FindByName(ctx, mt, f.Name)
	switch {
	case err == nil:
		f.ID = existing.ID
	case !isNotFound(err):
		return err
	}
	if err := store.Save(ctx, f); err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), f)
	}
	verb := "Saved"
	if existing != nil {
		verb = "Updated"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s filter %q: %s\n", verb, f.Name, describeFilter(f))
	return nil
}

func filterFromFlags(cmd *cobra.Command) *filter.CustomFilter {
	flags := cmd.Flags()
	f := &filter.CustomFilter{}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}
	intFlag := func(name string) *int {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetInt(name)
		return &v
	}
	f.Monitored = boolFlag("monitored")
	f.HasFile = boolFlag("has-file")
	f.CutoffMet = boolFlag("cutoff-met")
	if flags.Changed("profile") {
		v, _ := flags.GetInt64("profile")
		f.QualityProfileID = &v
	}
	f.YearMin = intFlag("year-min")
	f.YearMax = intFlag("year-max")
	return f
}

func runFiltersDeleteCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	store := app.state.Filters()
	f, err := store.FindByName(ctx, mt, args[0])
	if err != nil {
		return err
	}
	if err := store.Delete(ctx, f.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted filter %q\n", f.Name)
	return nil
}
