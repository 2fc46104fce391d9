package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/quality"
	"github.com/vmunix/arrdeck/pkg/api"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List quality profiles, best first",
	Args:  cobra.NoArgs,
	RunE:  runProfilesCmd,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	profiles, err := app.client.QualityProfiles(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch profiles: %w", err)
	}
	quality.SortProfiles(profiles)

	if jsonOutput {
		return printJSON(out, profiles)
	}
	printProfiles(out, profiles)
	return nil
}

func printProfiles(w io.Writer, profiles []api.QualityProfile) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No quality profiles configured")
		return
	}

	fmt.Fprintf(w, "Quality Profiles (%d):\n\n", len(profiles))
	fmt.Fprintf(w, "  %-4s %-20s %-14s %-7s %s\n", "ID", "NAME", "CUTOFF", "UPGRADE", "ALLOWED")
	rule(w, 80)
	for _, p := range profiles {
		var allowed []string
		for _, it := range p.Items {
			if it.Allowed {
				allowed = append(allowed, quality.Parse(it.Quality).String())
			}
		}
		fmt.Fprintf(w, "  %-4d %-20s %-14s %-7s %s\n",
			p.ID, truncate(p.Name, 20), quality.Parse(p.Cutoff), yesNo(p.UpgradeAllowed), strings.Join(allowed, ", "))
	}
}
