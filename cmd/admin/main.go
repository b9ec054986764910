// Package main provides the dashboard admin CLI. It drives the same list
// screens as the HTTP API and prints one page as a table.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	authRepo "social-admin-dashboard/internal/auth/repository"
	"social-admin-dashboard/internal/auth/repository/authapi"
	"social-admin-dashboard/internal/model"
	"social-admin-dashboard/pkg/backend"
	"social-admin-dashboard/pkg/log"
)

const cliSession = "cli"

// Global flag values.
var (
	flagBackendURL string
	flagEmail      string
	flagPassword   string
	flagToken      string
	flagTimeout    time.Duration
	flagJSON       bool
	flagVerbose    bool
)

var (
	logger log.Logger
	client *backend.Client
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "admin",
	Short: "Social admin dashboard from the terminal",
	Long: `admin signs in to the platform backend and lists content, users and
token transactions with the same search, filters and paging as the dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = log.NewNop()
		if flagVerbose {
			logger = log.Init(log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true})
		}
		client = backend.NewClient(flagBackendURL, backend.WithTimeout(flagTimeout))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackendURL, "backend-url", envOr("BACKEND_URL", "http://localhost:3000"), "platform backend root URL")
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", os.Getenv("ADMIN_EMAIL"), "sign-in email")
	rootCmd.PersistentFlags().StringVar(&flagPassword, "password", os.Getenv("ADMIN_PASSWORD"), "sign-in password")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", os.Getenv("ADMIN_TOKEN"), "backend access token (skips sign-in)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 15*time.Second, "backend request timeout")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output the screen view as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log backend calls")

	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(tokensCmd)
}

// backendScope signs in unless --token is given and returns the scope the
// screens run under.
func backendScope(ctx context.Context) (model.Scope, error) {
	if flagToken != "" {
		return model.Scope{SessionID: cliSession, AccessToken: flagToken}, nil
	}
	if flagEmail == "" || flagPassword == "" {
		return model.Scope{}, errors.New("either --token or --email and --password are required")
	}

	accounts := authapi.New(client, logger)
	token, err := accounts.Login(ctx, authRepo.LoginOptions{Email: flagEmail, Password: flagPassword})
	if err != nil {
		return model.Scope{}, fmt.Errorf("sign in: %w", err)
	}
	return model.Scope{SessionID: cliSession, Email: flagEmail, AccessToken: token}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
