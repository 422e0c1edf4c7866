package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/andsko/chorus/auth"
	"github.com/andsko/chorus/config"
	"github.com/andsko/chorus/sender"
	"github.com/andsko/chorus/spotify"
)

// loadCredentials reads the credentials file, falling back to the
// environment when the file does not exist.
func loadCredentials() (config.Credentials, error) {
	creds, err := config.FromFile(paths.Credentials, profile)
	if err != nil {
		if os.IsNotExist(err) {
			return config.FromEnvironment(), nil
		}
		return config.Credentials{}, err
	}
	return creds, nil
}

// newClient builds an authenticated Web API client with the full sender
// chain: transient HTTP, retries, and the on-disk response cache. The
// returned closer releases the cache database.
func newClient(ctx context.Context) (*spotify.Client, func(), error) {
	creds, err := loadCredentials()
	if err != nil {
		return nil, nil, err
	}
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, nil, errors.New("client credentials not configured; run 'chorus status' for details")
	}

	rc := auth.NewRefreshingCredentials(creds.ClientID, creds.ClientSecret, creds.RedirectURI)

	var token *auth.RefreshingToken
	if creds.UserRefresh != "" {
		token, err = rc.RefreshUserToken(ctx, creds.UserRefresh)
	} else {
		token, err = rc.RequestClientToken(ctx)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("authenticating: %w", err)
	}

	if err := paths.EnsureDirs(); err != nil {
		return nil, nil, err
	}
	store, err := sender.OpenCache(paths.Cache, log)
	if err != nil {
		return nil, nil, err
	}

	chain := sender.NewCaching(
		sender.NewRetrying(sender.NewTransient(0), 2, log),
		store,
		log,
	)

	client := spotify.New(token,
		spotify.WithSender(chain),
		spotify.WithLogger(log),
	)
	return client, func() { store.Close() }, nil
}
