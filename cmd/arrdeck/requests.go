package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrdeck/pkg/api"
)

var requestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "Review media requests",
}

var requestsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requests",
	Args:  cobra.NoArgs,
	RunE:  runRequestsListCmd,
}

var requestsApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsApproveCmd,
}

var requestsDeclineCmd = &cobra.Command{
	Use:   "decline <id>",
	Short: "Decline a request",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestsDeclineCmd,
}

func init() {
	rootCmd.AddCommand(requestsCmd)
	requestsCmd.AddCommand(requestsListCmd, requestsApproveCmd, requestsDeclineCmd)

	requestsListCmd.Flags().StringP("status", "s", "pending", "Status (pending, approved, declined, available, all)")
	requestsListCmd.Flags().Int("page", 1, "Page number")
	requestsDeclineCmd.Flags().String("reason", "", "Reason shown to the requester")
}

func runRequestsListCmd(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	status, _ := cmd.Flags().GetString("status")
	page, _ := cmd.Flags().GetInt("page")
	if status == "all" {
		status = ""
	}

	reqs, err := app.client.Requests(cmd.Context(), status, page)
	if err != nil {
		return fmt.Errorf("failed to fetch requests: %w", err)
	}
	if jsonOutput {
		return printJSON(out, reqs)
	}
	printRequests(out, reqs.Records)
	if reqs.TotalRecords > len(reqs.Records) {
		fmt.Fprintf(out, "\nPage %d, %d requests total\n", reqs.Page, reqs.TotalRecords)
	}
	return nil
}

func printRequests(w io.Writer, reqs []api.MediaRequest) {
	if len(reqs) == 0 {
		fmt.Fprintln(w, "No requests")
		return
	}
	fmt.Fprintf(w, "  %-5s %-6s %-40s %-10s %-14s %s\n", "ID", "TYPE", "TITLE", "STATUS", "BY", "WHEN")
	rule(w, 92)
	for _, r := range reqs {
		title := r.Title
		if r.Year > 0 {
			title = fmt.Sprintf("%s (%d)", r.Title, r.Year)
		}
		fmt.Fprintf(w, "  %-5d %-6s %-40s %-10s %-14s %s\n",
			r.ID, mediaLabel(r.MediaType), truncate(title, 40), r.Status, truncate(r.RequestedBy, 14), formatTimeAgo(r.CreatedAt))
	}
}

func runRequestsApproveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	r, err := app.client.ApproveRequest(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to approve request %d: %w", id, err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Approved %s\n", r.Title)
	return nil
}

func runRequestsDeclineCmd(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	reason, _ := cmd.Flags().GetString("reason")
	r, err := app.client.DeclineRequest(cmd.Context(), id, reason)
	if err != nil {
		return fmt.Errorf("failed to decline request %d: %w", id, err)
	}
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), r)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Declined %s\n", r.Title)
	return nil
}
