package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
	"github.com/lee777maker/Job-Applier-sub000/internal/types"
)

var preferencesCmd = &cobra.Command{
	Use:   "preferences",
	Short: "Set your job search preferences",
	Long:  "Store the role, contract types, location, and salary range used to rank job recommendations.",
	RunE:  runPreferences,
}

var (
	prefRole          string
	prefContractTypes []string
	prefLocation      string
	prefRemote        bool
	prefMinSalary     int
	prefMaxSalary     int
)

func init() {
	preferencesCmd.Flags().StringVarP(&prefRole, "role", "r", "", "Preferred role, e.g. \"Backend Engineer\" (required)")
	preferencesCmd.Flags().StringSliceVarP(&prefContractTypes, "contract-types", "c", nil, "Contract types, e.g. full-time,part-time (required)")
	preferencesCmd.Flags().StringVarP(&prefLocation, "location", "l", "", "Preferred location")
	preferencesCmd.Flags().BoolVar(&prefRemote, "remote", false, "Open to remote work")
	preferencesCmd.Flags().IntVar(&prefMinSalary, "min-salary", 0, "Minimum salary")
	preferencesCmd.Flags().IntVar(&prefMaxSalary, "max-salary", 0, "Maximum salary")

	preferencesCmd.MarkFlagRequired("role")
	preferencesCmd.MarkFlagRequired("contract-types")

	rootCmd.AddCommand(preferencesCmd)
}

func runPreferences(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())
	if !st.IsAuthenticated() {
		return fmt.Errorf("not logged in; run login first")
	}

	prefs := types.JobPreferences{
		PreferredRole: prefRole,
		ContractTypes: prefContractTypes,
		Location:      prefLocation,
		OpenToRemote:  prefRemote,
		MinSalary:     prefMinSalary,
		MaxSalary:     prefMaxSalary,
	}
	if err := prefs.Validate(); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	st.SetJobPreferences(prefs)

	fmt.Fprintf(os.Stdout, "Preferences saved: %s (%v)\n", prefs.PreferredRole, prefs.ContractTypes)
	fmt.Fprintf(os.Stdout, "Next step: %s\n", onboarding.PostLogin(snapshotOf(st)))
	return nil
}
