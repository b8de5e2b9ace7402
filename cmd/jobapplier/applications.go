package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/store"
	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"past-applications"},
	Short:   "List and record past job applications",
	Long:    "Show applications tracked for your account. Pass --company and --role to record one you made outside the assistant first.",
	RunE:    runApplications,
}

var (
	appCompany string
	appRole    string
	appStatus  string
)

func init() {
	applicationsCmd.Flags().StringVar(&appCompany, "company", "", "Company applied to")
	applicationsCmd.Flags().StringVar(&appRole, "role", "", "Role applied for")
	applicationsCmd.Flags().StringVar(&appStatus, "status", "", "Application status (applied, interviewing, offered, rejected)")

	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())
	user := st.User()
	if user == nil {
		return fmt.Errorf("not logged in; run login first")
	}

	client := newClient()
	if appCompany != "" || appRole != "" {
		app, err := client.CreateApplication(cmd.Context(), types.CreateApplicationRequest{
			UserID:  user.ID,
			Company: appCompany,
			Role:    appRole,
			Status:  appStatus,
		})
		if err != nil {
			return fmt.Errorf("failed to record application: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Recorded application to %s (%s)\n", app.Company, app.Status)
	} else if appStatus != "" {
		return fmt.Errorf("--status needs --company or --role")
	}

	apps, err := client.GetApplications(cmd.Context(), user.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch applications: %w", err)
	}
	if len(apps) == 0 {
		fmt.Fprintln(os.Stdout, "No past applications yet.")
		return nil
	}
	for _, app := range apps {
		fmt.Fprintf(os.Stdout, "%-40s %-20s %-25s %s\n",
			truncate(app.JobTitle, 40), truncate(app.Company, 20), app.Status, app.CreatedAt)
	}
	return nil
}
