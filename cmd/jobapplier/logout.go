package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and erase local state",
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func runLogout(cmd *cobra.Command, args []string) error {
	st := store.MustFromContext(cmd.Context())

	st.Logout()
	if err := clearToken(); err != nil {
		log.Printf("[logout] failed to remove session token: %v", err)
	}

	fmt.Fprintln(os.Stdout, "Logged out.")
	return nil
}
