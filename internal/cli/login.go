package cli

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/andsko/chorus/auth"
	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var scopes []string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize a user and print the refresh token",
		Long: "Opens the user authorization flow: prints the authorization URL, " +
			"waits for the pasted redirect URL, and exchanges the code for a token.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := loadCredentials()
			if err != nil {
				return err
			}
			if creds.ClientID == "" || creds.ClientSecret == "" || creds.RedirectURI == "" {
				return fmt.Errorf("login requires client_id, client_secret and redirect_uri")
			}

			requested := auth.AllScopes
			if len(scopes) > 0 {
				requested = auth.Scope(scopes)
			}

			cred := auth.NewCredentials(creds.ClientID, creds.ClientSecret, creds.RedirectURI)
			authURL, state := cred.AuthorizationURL("", requested...)

			fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser:\n\n  %s\n\n", authURL)
			fmt.Fprint(cmd.OutOrStdout(), "Paste the URL you were redirected to: ")

			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("reading redirect url: %w", err)
			}
			redirect := strings.TrimSpace(line)

			if err := verifyState(redirect, state); err != nil {
				return err
			}
			code, err := auth.ParseCodeFromURL(redirect)
			if err != nil {
				return err
			}

			token, err := cred.RequestUserToken(cmd.Context(), code)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nAuthorized with scope: %s\n", token.Scope)
			fmt.Fprintf(cmd.OutOrStdout(), "Refresh token:\n\n  %s\n\n", token.RefreshToken)
			fmt.Fprintf(cmd.OutOrStdout(),
				"Store it as user_refresh in %s (or %s) to stay logged in.\n",
				paths.Credentials, "CHORUS_USER_REFRESH")
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scopes, "scope", nil, "scopes to request (default: all)")
	return cmd
}

func verifyState(redirect, expected string) error {
	u, err := url.Parse(redirect)
	if err != nil {
		return fmt.Errorf("parsing redirect url: %w", err)
	}
	if got := u.Query().Get("state"); got != expected {
		return fmt.Errorf("state mismatch in redirect url")
	}
	return nil
}
