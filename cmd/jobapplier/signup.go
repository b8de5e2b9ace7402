package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	Long:  "Register a new account, start a session, and print where to go next.",
	RunE:  runSignup,
}

var (
	signupName     string
	signupSurname  string
	signupEmail    string
	signupPassword string
)

func init() {
	signupCmd.Flags().StringVarP(&signupName, "name", "n", "", "First name (required)")
	signupCmd.Flags().StringVarP(&signupSurname, "surname", "s", "", "Last name (required)")
	signupCmd.Flags().StringVarP(&signupEmail, "email", "e", "", "Account email (required)")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "Account password, 8 characters minimum (required)")

	signupCmd.MarkFlagRequired("name")
	signupCmd.MarkFlagRequired("surname")
	signupCmd.MarkFlagRequired("email")
	signupCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	client := newClient()
	resp, err := client.Register(cmd.Context(), signupName, signupSurname, signupEmail, signupPassword)
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	if resp.User == nil {
		return fmt.Errorf("signup failed: no user in response")
	}

	st.Login(*resp.User)
	if resp.Token != "" {
		if err := saveToken(resp.Token); err != nil {
			log.Printf("[signup] failed to save session token: %v", err)
		}
	}

	next := onboarding.PostLogin(snapshotOf(st))
	fmt.Fprintf(os.Stdout, "Welcome, %s. Account created for %s\n", resp.User.Name, resp.User.Email)
	fmt.Fprintf(os.Stdout, "Next step: %s\n", next)
	return nil
}
