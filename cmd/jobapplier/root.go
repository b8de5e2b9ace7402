package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lee777maker/Job-Applier-sub000/internal/api"
	"github.com/lee777maker/Job-Applier-sub000/internal/config"
	"github.com/lee777maker/Job-Applier-sub000/internal/onboarding"
	"github.com/lee777maker/Job-Applier-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "jobapplier",
	Short: "Job application assistant client",
	Long:  "Job applier manages your profile, job preferences, and recommendations, and drives AI-assisted resume tailoring, cover letters, and chat from the terminal.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := resolveConfig(); err != nil {
			return err
		}
		st, err := openStore()
		if err != nil {
			return err
		}
		cmd.SetContext(store.WithStore(cmd.Context(), st))
		return nil
	},
}

var (
	configPath string
	cfg        config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file")
}

// resolveConfig merges the environment over an optional config file.
// Environment values win; file values fill the gaps.
func resolveConfig() error {
	cfg = *config.FromEnv()
	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	return cfg.Validate()
}

// stateDir resolves where durable client state lives, defaulting to a
// directory under the user's home.
func stateDir() (string, error) {
	if cfg.StateDir != "" {
		return cfg.StateDir, nil
	}
	if dir := os.Getenv(config.EnvStateDir); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".jobapplier"), nil
}

func openStore() (*store.Store, error) {
	dir, err := stateDir()
	if err != nil {
		return nil, err
	}
	storage, err := store.NewFileStorage(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state storage: %w", err)
	}
	return store.New(storage), nil
}

// newClient builds the API client from the resolved config and attaches
// the saved session token if one exists. An expired token is dropped so
// requests fail with a clear 401 from the service, not a stale session.
func newClient() *api.Client {
	var opts []api.Option
	if cfg.APIBaseURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.APIBaseURL))
	}
	if cfg.AIBaseURL != "" {
		opts = append(opts, api.WithAIURL(cfg.AIBaseURL))
	}
	c := api.New(opts...)
	if token, err := loadToken(); err == nil && token != "" {
		c.SetToken(token)
		if expiry, err := c.SessionExpiry(); err == nil && time.Now().After(expiry) {
			log.Printf("[auth] saved session expired %s; run login again", expiry.Format(time.RFC3339))
			c.SetToken("")
		}
	}
	return c
}

func tokenPath() (string, error) {
	dir, err := stateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.token"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func clearToken() error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// snapshotOf projects the store state for the onboarding router.
func snapshotOf(st *store.Store) onboarding.Snapshot {
	return onboarding.Snapshot{
		IsLoading:       st.IsLoading(),
		IsAuthenticated: st.IsAuthenticated(),
		Profile:         st.Profile(),
		JobPreferences:  st.JobPreferences(),
	}
}
