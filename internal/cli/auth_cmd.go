package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zaydor/ai-project-manager/internal/cli/formatter"
	"github.com/zaydor/ai-project-manager/internal/connector"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize external services",
	}
	cmd.AddCommand(newAuthGoogleCmd())
	return cmd
}

// DefaultGoogleTokenPath is where the Google OAuth token is cached unless
// overridden with --token.
func DefaultGoogleTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "google-token.json"
	}
	return filepath.Join(home, ".aipm", "google-token.json")
}

func newAuthGoogleCmd() *cobra.Command {
	var clientSecrets, tokenPath string

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Run the Google OAuth flow for calendar access",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenPath == "" {
				tokenPath = DefaultGoogleTokenPath()
			}

			cfg, err := connector.LoadOAuthConfig(clientSecrets, 0, connector.CalendarScope)
			if err != nil {
				return err
			}

			token, err := connector.RunLocalFlow(cmd.Context(), cfg, os.Stderr)
			if err != nil {
				return err
			}
			if err := connector.SaveToken(tokenPath, token); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", formatter.Bold(tokenPath))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientSecrets, "client-secrets", "", "path to the client_secret.json from Google Cloud Console")
	cmd.Flags().StringVar(&tokenPath, "token", "", "where to cache the token (default ~/.aipm/google-token.json)")
	_ = cmd.MarkFlagRequired("client-secrets")
	return cmd
}
