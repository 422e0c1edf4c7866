package auth

import (
	"context"
	"sync"
)

// RefreshingToken wraps a token and refreshes it transparently when it
// is about to expire. Safe for concurrent use.
type RefreshingToken struct {
	mu    sync.Mutex
	token *Token
	cred  *Credentials
}

// NewRefreshingToken wraps an existing token. Client tokens (no refresh
// token) are renewed through the client-credentials flow.
func NewRefreshingToken(token *Token, cred *Credentials) *RefreshingToken {
	return &RefreshingToken{token: token, cred: cred}
}

// AccessToken returns a valid access token value, refreshing first if
// the current one is expiring.
func (t *RefreshingToken) AccessToken(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.token.IsExpiring() {
		fresh, err := t.refresh(ctx)
		if err != nil {
			return "", err
		}
		t.token = fresh
	}
	return t.token.AccessToken, nil
}

func (t *RefreshingToken) refresh(ctx context.Context) (*Token, error) {
	if t.token.RefreshToken == "" {
		return t.cred.RequestClientToken(ctx)
	}
	return t.cred.RefreshUserToken(ctx, t.token.RefreshToken)
}

// RefreshToken returns the underlying refresh token, empty for client
// tokens.
func (t *RefreshingToken) RefreshToken() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token.RefreshToken
}

// Scope returns the scope granted to the underlying token.
func (t *RefreshingToken) Scope() Scope {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token.Scope
}

// RefreshingCredentials is a convenience layer whose flows produce
// self-refreshing tokens directly.
type RefreshingCredentials struct {
	cred *Credentials
}

// NewRefreshingCredentials creates refreshing credentials for an
// application.
func NewRefreshingCredentials(clientID, clientSecret, redirectURI string, opts ...CredentialsOption) *RefreshingCredentials {
	return &RefreshingCredentials{
		cred: NewCredentials(clientID, clientSecret, redirectURI, opts...),
	}
}

// RequestClientToken requests a self-refreshing client token.
func (c *RefreshingCredentials) RequestClientToken(ctx context.Context) (*RefreshingToken, error) {
	tok, err := c.cred.RequestClientToken(ctx)
	if err != nil {
		return nil, err
	}
	return NewRefreshingToken(tok, c.cred), nil
}

// AuthorizationURL builds the user authorization URL, see
// Credentials.AuthorizationURL.
func (c *RefreshingCredentials) AuthorizationURL(state string, scopes ...string) (authURL, usedState string) {
	return c.cred.AuthorizationURL(state, scopes...)
}

// RequestUserToken exchanges an authorization code for a self-refreshing
// user token.
func (c *RefreshingCredentials) RequestUserToken(ctx context.Context, code string) (*RefreshingToken, error) {
	tok, err := c.cred.RequestUserToken(ctx, code)
	if err != nil {
		return nil, err
	}
	return NewRefreshingToken(tok, c.cred), nil
}

// RefreshUserToken builds a self-refreshing token from a stored refresh
// token.
func (c *RefreshingCredentials) RefreshUserToken(ctx context.Context, refreshToken string) (*RefreshingToken, error) {
	tok, err := c.cred.RefreshUserToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return NewRefreshingToken(tok, c.cred), nil
}
