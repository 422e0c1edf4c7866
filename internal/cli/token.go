package cli

import (
	"fmt"
	"time"

	"github.com/andsko/chorus/auth"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Request a client-credentials access token and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := loadCredentials()
			if err != nil {
				return err
			}
			if creds.ClientID == "" || creds.ClientSecret == "" {
				return fmt.Errorf("client credentials not configured")
			}

			cred := auth.NewCredentials(creds.ClientID, creds.ClientSecret, "")
			token, err := cred.RequestClientToken(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires in %s\n", token.ExpiresIn().Round(time.Second))
			return nil
		},
	}
}
