package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/observability"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Fetch and show job recommendations",
	RunE:  runJobs,
}

var jobsLimit int

func init() {
	jobsCmd.Flags().IntVarP(&jobsLimit, "limit", "l", 0, "Maximum number of recommendations (default 50)")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())
	user := st.User()
	if user == nil {
		return fmt.Errorf("not logged in; run login first")
	}

	client := newClient()
	jobs, err := client.GetJobRecommendations(cmd.Context(), user.ID, jobsLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch recommendations: %w", err)
	}
	st.SetRecommendedJobs(jobs)

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobs(jobs)
	}

	if len(jobs) == 0 {
		fmt.Fprintln(os.Stdout, "No recommendations yet. Upload a CV and set preferences first.")
		return nil
	}
	for _, job := range jobs {
		fmt.Fprintf(os.Stdout, "%-40s %-20s %-20s %s %3d%%\n",
			truncate(job.Title, 40), truncate(job.Company, 20), truncate(job.Location, 20),
			matchBar(job.MatchPercent()), job.MatchPercent())
	}
	return nil
}

// matchBar renders a ten-segment bar for a 0-100 match percentage.
func matchBar(percent int) string {
	filled := percent / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
