package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/arrdeck/internal/library"
	"github.com/vmunix/arrdeck/internal/paginate"
	"github.com/vmunix/arrdeck/pkg/api"
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Browse and manage the movie and series library",
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List library titles",
	Long: `List library titles with search, presets, saved filters and sorting.

Presets: all, monitored, unmonitored, missing, cutoff-unmet.
Sort keys: title, year, added, size, quality, profile.

Examples:
  arrdeck library list
  arrdeck library list --type tv --preset missing
  arrdeck library list --search matrix --sort year --desc
  arrdeck library list --filter "old 4k" --page 2`,
	Args: cobra.NoArgs,
	RunE: runLibraryListCmd,
}

var libraryAddCmd = &cobra.Command{
	Use:   "add <tmdb-id>",
	Short: "Add a movie or series to the library",
	Long: `Add a movie or series by TMDB ID.

Without --profile the highest quality profile is used. Without --root the
first root folder for the media type is used.

Examples:
  arrdeck library add 603
  arrdeck library add 95396 --type tv --monitor future --search`,
	Args: cobra.ExactArgs(1),
	RunE: runLibraryAddCmd,
}

var libraryEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit one library title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryEditCmd,
}

var libraryBulkEditCmd = &cobra.Command{
	Use:   "bulk-edit <id>...",
	Short: "Edit several library titles at once",
	Long: `Edit several library titles at once. IDs may be given as separate
arguments or comma separated. Only the flags you pass are changed.

Examples:
  arrdeck library bulk-edit 1 2 3 --monitored=false
  arrdeck library bulk-edit 4,5 --type tv --series-type anime
  arrdeck library bulk-edit 6 --root /media/movies2 --move-files`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLibraryBulkEditCmd,
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a title from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryDeleteCmd,
}

var libraryRenameCmd = &cobra.Command{
	Use:   "rename <id>",
	Short: "Preview or apply file renames for a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRenameCmd,
}

var libraryRefreshCmd = &cobra.Command{
	Use:   "refresh <id>",
	Short: "Refresh metadata for a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibraryRefreshCmd,
}

var librarySearchCmd = &cobra.Command{
	Use:   "search <id>",
	Short: "Ask the server to search indexers for a title",
	Args:  cobra.ExactArgs(1),
	RunE:  runLibrarySearchCmd,
}

var libraryStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show library totals",
	Args:  cobra.NoArgs,
	RunE:  runLibraryStatsCmd,
}

func init() {
	rootCmd.AddCommand(libraryCmd)
	libraryCmd.AddCommand(libraryListCmd, libraryAddCmd, libraryEditCmd, libraryBulkEditCmd,
		libraryDeleteCmd, libraryRenameCmd, libraryRefreshCmd, librarySearchCmd, libraryStatsCmd)

	libraryCmd.PersistentFlags().StringP("type", "t", "movie", "Media type (movie, tv)")

	libraryListCmd.Flags().StringP("search", "s", "", "Filter by title")
	libraryListCmd.Flags().StringP("preset", "p", string(library.PresetAll), "Preset view")
	libraryListCmd.Flags().StringP("filter", "f", "", "Saved custom filter name")
	libraryListCmd.Flags().String("sort", string(library.SortTitle), "Sort key")
	libraryListCmd.Flags().Bool("desc", false, "Sort descending")
	libraryListCmd.Flags().Int("page", 1, "Page number")
	libraryListCmd.Flags().Int("per-page", 0, "Items per page (default from config)")

	libraryAddCmd.Flags().Int64("profile", 0, "Quality profile ID")
	libraryAddCmd.Flags().String("root", "", "Root folder path")
	libraryAddCmd.Flags().Bool("unmonitored", false, "Add without monitoring")
	libraryAddCmd.Flags().Bool("search", false, "Search for releases after adding")
	libraryAddCmd.Flags().String("monitor", "all", "Series monitor mode (all, future, missing, existing, firstSeason, latestSeason, none)")
	libraryAddCmd.Flags().String("series-type", "standard", "Series type (standard, daily, anime)")
	libraryAddCmd.Flags().Bool("no-season-folder", false, "Do not use season folders")

	addEditFlags(libraryEditCmd)
	addEditFlags(libraryBulkEditCmd)
	libraryBulkEditCmd.Flags().Bool("move-files", false, "Move files to the new root folder")

	libraryDeleteCmd.Flags().Bool("delete-files", false, "Also delete files from disk")
	libraryRenameCmd.Flags().Bool("apply", false, "Apply the previewed renames")
}

func addEditFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("monitored", false, "Set monitored")
	cmd.Flags().Int64("profile", 0, "Set quality profile ID")
	cmd.Flags().String("root", "", "Set root folder path")
	cmd.Flags().String("series-type", "", "Set series type (standard, daily, anime)")
	cmd.Flags().Bool("season-folder", false, "Set season folder use")
}

func mediaTypeFlag(cmd *cobra.Command) (api.MediaType, error) {
	s, _ := cmd.Flags().GetString("type")
	return parseMediaType(s)
}

// loadLibrary fetches the titles of one media type together with the
// quality profiles they are ranked against.
func loadLibrary(ctx context.Context, mt api.MediaType) ([]library.Item, error) {
	var (
		profiles []api.QualityProfile
		items    []library.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = app.client.QualityProfiles(gctx)
		return err
	})
	var (
		movies []api.Movie
		series []api.Series
	)
	g.Go(func() error {
		var err error
		if mt == api.MediaTypeSeries {
			series, err = app.client.SeriesList(gctx, "")
		} else {
			movies, err = app.client.Movies(gctx, api.MovieListQuery{})
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if mt == api.MediaTypeSeries {
		items = library.FromSeries(series, profiles)
	} else {
		items = library.FromMovies(movies, profiles)
	}
	return items, nil
}

func runLibraryListCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	search, _ := cmd.Flags().GetString("search")
	preset, _ := cmd.Flags().GetString("preset")
	filterName, _ := cmd.Flags().GetString("filter")
	sortKey, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	if perPage <= 0 {
		perPage = app.cfg.Library.PageSize
	}

	q := library.Query{
		Search:  search,
		Preset:  library.Preset(preset),
		Sort:    library.SortKey(sortKey),
		Desc:    desc,
		Page:    page,
		PerPage: perPage,
	}
	if err := q.Validate(); err != nil {
		return err
	}
	if filterName != "" {
		f, err := app.state.Filters().FindByName(ctx, mt, filterName)
		if err != nil {
			return err
		}
		q.Custom = f
	}

	items, err := loadLibrary(ctx, mt)
	if err != nil {
		return fmt.Errorf("failed to fetch library: %w", err)
	}
	res, err := library.Browse(items, q)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out, res)
	}
	printLibrary(out, mt, res)
	return nil
}

func printLibrary(w io.Writer, mt api.MediaType, res library.Result) {
	if res.Total == 0 {
		fmt.Fprintln(w, "No titles match")
		return
	}
	fmt.Fprintf(w, "  %-6s %-40s %-4s %-3s %-4s %-14s %-16s %9s\n",
		"ID", "TITLE", "YEAR", "MON", "FILE", "QUALITY", "PROFILE", "SIZE")
	rule(w, 104)
	for _, it := range res.Items {
		fileState := "-"
		switch {
		case it.HasFile && it.CutoffMet:
			fileState = "ok"
		case it.HasFile:
			fileState = "up"
		}
		mon := "no"
		if it.Monitored {
			mon = "yes"
		}
		fmt.Fprintf(w, "  %-6d %-40s %-4d %-3s %-4s %-14s %-16s %9s\n",
			it.ID, truncate(it.Title, 40), it.Year, mon, fileState,
			it.FileQuality, truncate(it.Profile, 16), formatSize(it.SizeOnDisk))
	}
	fmt.Fprintf(w, "\n%d %s, page %d of %d", res.Total, pluralMedia(mt, res.Total), res.Page, res.Pages)
	if res.Pages > 1 {
		pages := make([]string, 0)
		for _, p := range paginate.Window(res.Page, res.Pages, 7) {
			if p == res.Page {
				pages = append(pages, fmt.Sprintf("[%d]", p))
			} else {
				pages = append(pages, fmt.Sprintf("%d", p))
			}
		}
		fmt.Fprintf(w, "  (%s)", strings.Join(pages, " "))
	}
	fmt.Fprintln(w)
}

func pluralMedia(mt api.MediaType, n int) string {
	if mt == api.MediaTypeSeries {
		return "series"
	}
	if n == 1 {
		return "movie"
	}
	return "movies"
}

func runLibraryAddCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	tmdbID, err := parseID(args[0])
	if err != nil {
		return err
	}
	profileID, _ := cmd.Flags().GetInt64("profile")
	root, _ := cmd.Flags().GetString("root")
	unmonitored, _ := cmd.Flags().GetBool("unmonitored")
	searchOnAdd, _ := cmd.Flags().GetBool("search")

	if profileID == 0 {
		profiles, err := app.client.QualityProfiles(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch profiles: %w", err)
		}
		_, def := library.ProfileChoices(profiles)
		if def == nil {
			return errors.New("no quality profiles configured on the server")
		}
		profileID = def.ID
	}
	if root == "" {
		root, err = defaultRootFolder(ctx, mt)
		if err != nil {
			return err
		}
	}

	adder := library.NewAdder(app.client, app.log)
	var res library.AddResult
	if mt == api.MediaTypeSeries {
		monitor, _ := cmd.Flags().GetString("monitor")
		seriesType, _ := cmd.Flags().GetString("series-type")
		noSeasonFolder, _ := cmd.Flags().GetBool("no-season-folder")
		res, err = adder.AddSeries(ctx, api.AddSeriesInput{
			TMDBID:           tmdbID,
			QualityProfileID: profileID,
			RootFolderPath:   root,
			Monitored:        !unmonitored,
			MonitorMode:      monitor,
			SeasonFolder:     !noSeasonFolder,
			SeriesType:       seriesType,
			SearchOnAdd:      searchOnAdd,
		})
	} else {
		res, err = adder.AddMovie(ctx, api.AddMovieInput{
			TMDBID:           tmdbID,
			QualityProfileID: profileID,
			RootFolderPath:   root,
			Monitored:        !unmonitored,
			SearchOnAdd:      searchOnAdd,
		})
	}
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(out, res)
	}
	switch {
	case res.AlreadyExists:
		fmt.Fprintf(out, "Already in library (TMDB %d)\n", tmdbID)
	case res.Movie != nil:
		fmt.Fprintf(out, "Added movie %s (%d) as #%d\n", res.Movie.Title, res.Movie.Year, res.Movie.ID)
	case res.Series != nil:
		fmt.Fprintf(out, "Added series %s (%d) as #%d\n", res.Series.Title, res.Series.Year, res.Series.ID)
	}
	return nil
}

func defaultRootFolder(ctx context.Context, mt api.MediaType) (string, error) {
	folders, err := app.client.RootFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch root folders: %w", err)
	}
	for _, f := range folders {
		if f.MediaType == mt && f.Accessible {
			return f.Path, nil
		}
	}
	return "", fmt.Errorf("no accessible %s root folder configured; pass --root", mediaLabel(mt))
}

// editFromFlags turns the edit flags the user actually passed into a bulk
// edit with the given ids.
func editFromFlags(cmd *cobra.Command, ids []int64) api.BulkEditInput {
	in := api.BulkEditInput{IDs: ids}
	flags := cmd.Flags()
	if flags.Changed("monitored") {
		v, _ := flags.GetBool("monitored")
		in.Monitored = &v
	}
	if flags.Changed("profile") {
		v, _ := flags.GetInt64("profile")
		in.QualityProfileID = &v
	}
	if flags.Changed("root") {
		v, _ := flags.GetString("root")
		in.RootFolderPath = &v
	}
	if flags.Changed("series-type") {
		v, _ := flags.GetString("series-type")
		in.SeriesType = &v
	}
	if flags.Changed("season-folder") {
		v, _ := flags.GetBool("season-folder")
		in.SeasonFolder = &v
	}
	if flags.Lookup("move-files") != nil {
		in.MoveFiles, _ = flags.GetBool("move-files")
	}
	return in
}

func runLibraryEditCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	edit := editFromFlags(cmd, []int64{id})
	if err := library.ValidateBulkEdit(edit); err != nil {
		return err
	}

	if mt == api.MediaTypeSeries {
		s, err := app.client.Series(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to fetch series: %w", err)
		}
		applySeriesEdit(s, edit)
		updated, err := app.client.UpdateSeries(ctx, *s)
		if err != nil {
			return fmt.Errorf("failed to update series: %w", err)
		}
		if jsonOutput {
			return printJSON(out, updated)
		}
		fmt.Fprintf(out, "Updated series %s\n", updated.Title)
		return nil
	}

	if edit.SeriesType != nil || edit.SeasonFolder != nil {
		return fmt.Errorf("%w: --series-type and --season-folder apply to series only", library.ErrInvalidEdit)
	}
	m, err := app.client.Movie(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch movie: %w", err)
	}
	applyMovieEdit(m, edit)
	updated, err := app.client.UpdateMovie(ctx, *m)
	if err != nil {
		return fmt.Errorf("failed to update movie: %w", err)
	}
	if jsonOutput {
		return printJSON(out, updated)
	}
	fmt.Fprintf(out, "Updated movie %s\n", updated.Title)
	return nil
}

func applyMovieEdit(m *api.Movie, e api.BulkEditInput) {
	if e.Monitored != nil {
		m.Monitored = *e.Monitored
	}
	if e.QualityProfileID != nil {
		m.QualityProfileID = *e.QualityProfileID
	}
	if e.RootFolderPath != nil {
		m.RootFolderPath = *e.RootFolderPath
	}
}

func applySeriesEdit(s *api.Series, e api.BulkEditInput) {
	if e.Monitored != nil {
		s.Monitored = *e.Monitored
	}
	if e.QualityProfileID != nil {
		s.QualityProfileID = *e.QualityProfileID
	}
	if e.RootFolderPath != nil {
		s.RootFolderPath = *e.RootFolderPath
	}
	if e.SeriesType != nil {
		s.SeriesType = *e.SeriesType
	}
	if e.SeasonFolder != nil {
		s.SeasonFolder = *e.SeasonFolder
	}
}

func runLibraryBulkEditCmd(cmd *cobra.Command, args []string) error {
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	adder := library.NewAdder(app.client, app.log)
	n, err := adder.BulkEdit(cmd.Context(), mt, editFromFlags(cmd, ids))
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), map[string]int{"updated": n})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d of %d %s\n", n, len(ids), pluralMedia(mt, len(ids)))
	return nil
}

func runLibraryDeleteCmd(cmd *cobra.Command, args []string) error {
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	deleteFiles, _ := cmd.Flags().GetBool("delete-files")

	if mt == api.MediaTypeSeries {
		err = app.client.DeleteSeries(cmd.Context(), id, deleteFiles)
	} else {
		err = app.client.DeleteMovie(cmd.Context(), id, deleteFiles)
	}
	if err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", mediaLabel(mt), id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s #%d\n", mediaLabel(mt), id)
	return nil
}

func runLibraryRenameCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	apply, _ := cmd.Flags().GetBool("apply")

	preview, rename := app.client.PreviewMovieRename, app.client.RenameMovie
	if mt == api.MediaTypeSeries {
		preview, rename = app.client.PreviewSeriesRename, app.client.RenameSeries
	}

	previews, err := preview(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to preview renames: %w", err)
	}
	if jsonOutput && !apply {
		return printJSON(out, previews)
	}
	if len(previews) == 0 {
		fmt.Fprintln(out, "All files already follow the naming format")
		return nil
	}
	for _, p := range previews {
		fmt.Fprintf(out, "  %s\n    -> %s\n", p.ExistingPath, p.NewPath)
	}
	if !apply {
		fmt.Fprintf(out, "\n%d files would be renamed; rerun with --apply\n", len(previews))
		return nil
	}

	fileIDs := make([]int64, len(previews))
	for i, p := range previews {
		fileIDs[i] = p.FileID
	}
	if err := rename(ctx, id, fileIDs); err != nil {
		return fmt.Errorf("failed to rename files: %w", err)
	}
	fmt.Fprintf(out, "\nRenamed %d files\n", len(fileIDs))
	return nil
}

func runLibraryRefreshCmd(cmd *cobra.Command, args []string) error {
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if mt == api.MediaTypeSeries {
		err = app.client.RefreshSeries(cmd.Context(), id)
	} else {
		err = app.client.RefreshMovie(cmd.Context(), id)
	}
	if err != nil {
		return fmt.Errorf("failed to refresh %s %d: %w", mediaLabel(mt), id, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Refresh queued for %s #%d\n", mediaLabel(mt), id)
	return nil
}

func runLibrarySearchCmd(cmd *cobra.Command, args []string) error {
	mt, err := mediaTypeFlag(cmd)
	if err != nil {
		return err
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	var res *api.CommandResult
	if mt == api.MediaTypeSeries {
		res, err = app.client.SearchSeries(cmd.Context(), id)
	} else {
		res, err = app.client.SearchMovie(cmd.Context(), id)
	}
	if err != nil {
		return fmt.Errorf("failed to start search: %w", err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Name, res.Status)
	return nil
}

func runLibraryStatsCmd(cmd *cobra.Command, args []string) error {
	stats, err := app.client.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch stats: %w", err)
	}
	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, stats)
	}
	fmt.Fprintf(out, "Movies:    %d (%d with files)\n", stats.Movies, stats.MoviesWithFile)
	fmt.Fprintf(out, "Series:    %d (%d of %d episodes on disk)\n", stats.Series, stats.EpisodeFiles, stats.Episodes)
	fmt.Fprintf(out, "Monitored: %d\n", stats.Monitored)
	fmt.Fprintf(out, "On disk:   %s\n", formatSize(stats.SizeOnDisk))
	return nil
}
