package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/internal/activity"
	"github.com/vmunix/arrdeck/pkg/api"
)

var activityCmd = &cobra.Command{
	Use:     "activity",
	Aliases: []string{"act"},
	Short:   "Download queue, history and blocklist",
}

var activityQueueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show the download queue",
	Args:  cobra.NoArgs,
	RunE:  runActivityQueueCmd,
}

var activityHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show grab, import and failure history",
	Args:  cobra.NoArgs,
	RunE:  runActivityHistoryCmd,
}

var activityWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow the queue, printing changes as they happen",
	Long: `Poll the queue at activity.poll_interval and print what changed.
Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runActivityWatchCmd,
}

var activityRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a download from the queue",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivityRemoveCmd,
}

var activityBlocklistCmd = &cobra.Command{
	Use:   "blocklist",
	Short: "Show releases the server will not grab again",
	Args:  cobra.NoArgs,
	RunE:  runActivityBlocklistCmd,
}

func init() {
	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityQueueCmd, activityHistoryCmd, activityWatchCmd, activityRemoveCmd, activityBlocklistCmd)

	activityQueueCmd.Flags().Bool("sync", false, "Ask the server to sync download clients first")

	activityHistoryCmd.Flags().String("event", "", "Only this event type (grabbed, imported, failed, deleted)")
	activityHistoryCmd.Flags().Int("page", 1, "Page number")
	activityHistoryCmd.Flags().Int("per-page", 0, "Records per page (default from config)")

	activityWatchCmd.Flags().Duration("interval", 0, "Poll interval (default from config)")

	activityRemoveCmd.Flags().Bool("keep-in-client", false, "Leave the download in the download client")
	activityRemoveCmd.Flags().Bool("blocklist", false, "Blocklist the release")

	activityBlocklistCmd.Flags().Int("page", 1, "Page number")
}

func runActivityQueueCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if sync, _ := cmd.Flags().GetBool("sync"); sync {
		if err := app.client.SyncDownloads(ctx); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
	}
	queue, err := app.client.Queue(ctx)
	if err != nil {
		return fmt.Errorf("queue fetch failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, queue)
	}
	printQueue(out, queue)
	return nil
}

func printQueue(w io.Writer, queue []api.Download) {
	if len(queue) == 0 {
		fmt.Fprintln(w, "No active downloads")
		return
	}
	fmt.Fprintf(w, "Queue (%d):\n\n", len(queue))
	fmt.Fprintf(w, "  %-5s %-12s %-44s %8s %10s %s\n", "ID", "STATUS", "RELEASE", "PROGRESS", "SIZE", "ETA")
	rule(w, 92)
	for _, d := range queue {
		eta := d.TimeLeft
		if eta == "" {
			eta = "-"
		}
		fmt.Fprintf(w, "  %-5d %-12s %-44s %7.1f%% %10s %s\n",
			d.ID, d.Status, truncate(d.Title, 44), d.Progress, formatSize(d.Size), eta)
		if d.ErrorMessage != "" {
			fmt.Fprintf(w, "        ! %s\n", d.ErrorMessage)
		}
	}
}

func runActivityHistoryCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	event, _ := cmd.Flags().GetString("event")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	if perPage <= 0 {
		perPage = app.cfg.Activity.HistorySize
	}

	hist, err := app.client.History(cmd.Context(), api.HistoryQuery{
		EventType: event,
		Page:      page,
		PageSize:  perPage,
	})
	if err != nil {
		return fmt.Errorf("history fetch failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, hist)
	}
	printHistory(out, hist.Records)
	if hist.TotalRecords > len(hist.Records) {
		fmt.Fprintf(out, "\nPage %d, %d records total\n", hist.Page, hist.TotalRecords)
	}
	return nil
}

func printHistory(w io.Writer, records []api.HistoryRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No history")
		return
	}
	fmt.Fprintf(w, "  %-14s %-10s %-48s %s\n", "WHEN", "EVENT", "RELEASE", "QUALITY")
	rule(w, 90)
	for _, r := range records {
		fmt.Fprintf(w, "  %-14s %-10s %-48s %s\n",
			formatTimeAgo(r.Date), r.EventType, truncate(r.SourceTitle, 48), r.Quality)
	}
}

func runActivityWatchCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	interval, _ := cmd.Flags().GetDuration("interval")
	if interval <= 0 {
		interval = app.cfg.Activity.PollInterval
	}

	poller := activity.NewPoller(app.client,
		activity.WithInterval(interval),
		activity.WithHistorySize(app.cfg.Activity.HistorySize),
		activity.WithLogger(app.log),
	)

	var (
		prev  []api.Download
		first = true
	)
	return poller.Run(cmd.Context(), func(s activity.Snapshot) {
		if s.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s poll failed: %v\n", s.At.Format(time.TimeOnly), s.Err)
			if s.Queue == nil {
				return
			}
		}
		if first {
			first = false
			prev = s.Queue
			if jsonOutput {
				_ = printJSON(out, s.Queue)
				return
			}
			printQueue(out, s.Queue)
			fmt.Fprintf(out, "\nWatching every %s, Ctrl-C to stop\n\n", interval)
			return
		}

		changes := activity.Diff(prev, s.Queue)
		prev = s.Queue
		for _, c := range changes {
			if jsonOutput {
				_ = printJSON(out, c)
				continue
			}
			fmt.Fprintf(out, "%s %s\n", s.At.Format(time.TimeOnly), formatChange(c))
		}
	})
}

// formatChange renders one queue change as a single line.
func formatChange(c activity.Change) string {
	d := c.Download
	switch c.Kind {
	case activity.ChangeAdded:
		return fmt.Sprintf("+ %s (%s, %s)", d.Title, d.Status, formatSize(d.Size))
	case activity.ChangeProgressed:
		return fmt.Sprintf("  %s %.1f%%", d.Title, d.Progress)
	case activity.ChangeStatus:
		was := ""
		if c.Previous != nil {
			was = c.Previous.Status
		}
		return fmt.Sprintf("~ %s %s -> %s", d.Title, was, d.Status)
	case activity.ChangeFinished:
		return fmt.Sprintf("✓ %s %s", d.Title, d.Status)
	case activity.ChangeFailed:
		msg := d.Status
		if d.ErrorMessage != "" {
			msg += ": " + d.ErrorMessage
		}
		return fmt.Sprintf("! %s %s", d.Title, msg)
	case activity.ChangeRemoved:
		return fmt.Sprintf("- %s", d.Title)
	}
	return fmt.Sprintf("? %s %s", d.Title, c.Kind)
}

func runActivityRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	keep, _ := cmd.Flags().GetBool("keep-in-client")
	blocklist, _ := cmd.Flags().GetBool("blocklist")

	if err := app.client.RemoveDownload(cmd.Context(), id, !keep, blocklist); err != nil {
		return fmt.Errorf("failed to remove download %d: %w", id, err)
	}
	msg := fmt.Sprintf("Removed download #%d", id)
	if blocklist {
		msg += " and blocklisted the release"
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func runActivityBlocklistCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	page, _ := cmd.Flags().GetInt("page")
	items, err := app.client.Blocklist(cmd.Context(), page)
	if err != nil {
		return fmt.Errorf("blocklist fetch failed: %w", err)
	}
	if jsonOutput {
		return printJSON(out, items)
	}
	if len(items.Records) == 0 {
		fmt.Fprintln(out, "Blocklist is empty")
		return nil
	}
	fmt.Fprintf(out, "  %-5s %-14s %-48s %s\n", "ID", "WHEN", "RELEASE", "REASON")
	rule(out, 90)
	for _, b := range items.Records {
		fmt.Fprintf(out, "  %-5d %-14s %-48s %s\n", b.ID, formatTimeAgo(b.Date), truncate(b.SourceTitle, 48), b.Message)
	}
	return nil
}
