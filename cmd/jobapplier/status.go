package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your onboarding stage and routing decision",
	RunE:  runStatus,
}

var statusPath string

func init() {
	statusCmd.Flags().StringVar(&statusPath, "path", onboarding.PathHome, "Path to evaluate")

	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	snapshot := snapshotOf(st)
	fmt.Fprintf(os.Stdout, "Stage: %s\n", onboarding.CurrentStage(snapshot))

	if user := st.User(); user != nil {
		fmt.Fprintf(os.Stdout, "User:  %s %s <%s>\n", user.Name, user.Surname, user.Email)
	}
	if expiry, err := newClient().SessionExpiry(); err == nil {
		fmt.Fprintf(os.Stdout, "Session expires: %s\n", expiry.Format(time.RFC3339))
	}
	fmt.Fprintf(os.Stdout, "Jobs:  %d recommended, %d chat messages\n",
		len(st.RecommendedJobs()), len(st.ChatMessages()))

	decision := onboarding.Evaluate(snapshot, statusPath)
	switch {
	case decision.Loading:
		fmt.Fprintf(os.Stdout, "Route: %s -> loading\n", statusPath)
	case decision.Allow:
		fmt.Fprintf(os.Stdout, "Route: %s -> allow\n", statusPath)
	default:
		fmt.Fprintf(os.Stdout, "Route: %s -> redirect %s\n", statusPath, decision.Redirect)
	}
	return nil
}
