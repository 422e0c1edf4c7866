package cli

import (
	"fmt"
	"os"

	"github.com/andsko/chorus/config"
	"github.com/andsko/chorus/internal/version"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show chorus configuration summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("chorus %s (commit %s)\n\n", version.Version, version.Commit)

			fmt.Printf("Credentials: %s\n", paths.Credentials)
			fmt.Printf("Cache:       %s\n", paths.Cache)
			fmt.Println()

			creds, err := config.FromFile(paths.Credentials, profile)
			source := "file"
			if err != nil {
				if !os.IsNotExist(err) {
					fmt.Printf("Credentials file: error loading: %v\n", err)
					return nil
				}
				creds = config.FromEnvironment()
				source = "environment"
			}

			fmt.Printf("Source:       %s\n", source)
			fmt.Printf("Client ID:    %s\n", presence(creds.ClientID))
			fmt.Printf("Secret:       %s\n", presence(creds.ClientSecret))
			fmt.Printf("Redirect URI: %s\n", valueOr(creds.RedirectURI, "(not set)"))
			fmt.Printf("User refresh: %s\n", presence(creds.UserRefresh))

			if creds.ClientID == "" || creds.ClientSecret == "" {
				fmt.Printf("\nSet %s and %s, or create %s.\n",
					config.ClientIDVar, config.ClientSecretVar, paths.Credentials)
			}
			return nil
		},
	}
}

func presence(s string) string {
	if s == "" {
		return "(not set)"
	}
	return "set"
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
