package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and load your session",
	Long:  "Authenticate against the backend, load your profile and job recommendations, and print where to go next.",
	RunE:  runLogin,
}

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (required)")

	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	client := newClient()
	resp, err := client.Login(cmd.Context(), loginEmail, loginPassword)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	if resp.User == nil {
		return fmt.Errorf("login failed: no user in response")
	}

	st.Login(*resp.User)
	if resp.Token != "" {
		if err := saveToken(resp.Token); err != nil {
			log.Printf("[login] failed to save session token: %v", err)
		}
	}

	// Best-effort bootstrap; a missing profile just means onboarding
	// starts from the beginning.
	if session, err := client.LoadSession(cmd.Context(), resp.User.ID); err == nil {
		st.SetProfile(session.Profile)
		st.SetRecommendedJobs(session.Jobs)
	} else {
		log.Printf("[login] session bootstrap skipped: %v", err)
	}

	next := onboarding.PostLogin(snapshotOf(st))
	fmt.Fprintf(os.Stdout, "Logged in as %s %s <%s>\n", resp.User.Name, resp.User.Surname, resp.User.Email)
	fmt.Fprintf(os.Stdout, "Next step: %s\n", next)
	return nil
}
