package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Spotify accounts service endpoints.
const (
	AuthorizeURL = "https://accounts.spotify.com/authorize"
	TokenURL     = "https://accounts.spotify.com/api/token"
)

// Credentials performs OAuth2 flows for a registered application.
type Credentials struct {
	clientID     string
	clientSecret string
	redirectURI  string
	endpoint     oauth2.Endpoint
	httpClient   *http.Client
}

// CredentialsOption configures Credentials.
type CredentialsOption func(*Credentials)

// WithEndpoint overrides the accounts service endpoints. Used in tests.
func WithEndpoint(authorizeURL, tokenURL string) CredentialsOption {
	return func(c *Credentials) {
		c.endpoint = oauth2.Endpoint{AuthURL: authorizeURL, TokenURL: tokenURL}
	}
}

// WithHTTPClient sets the HTTP client used for token requests.
func WithHTTPClient(hc *http.Client) CredentialsOption {
	return func(c *Credentials) { c.httpClient = hc }
}

// NewCredentials creates credentials for an application. The redirect URI
// may be empty if only the client-credentials flow is used.
func NewCredentials(clientID, clientSecret, redirectURI string, opts ...CredentialsOption) *Credentials {
	c := &Credentials{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		endpoint:     oauth2.Endpoint{AuthURL: AuthorizeURL, TokenURL: TokenURL},
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Credentials) config(scopes Scope) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		RedirectURL:  c.redirectURI,
		Endpoint:     c.endpoint,
		Scopes:       scopes,
	}
}

func (c *Credentials) context(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// RequestClientToken requests a token with the client-credentials flow.
// The token carries no refresh token and grants no user scopes.
func (c *Credentials) RequestClientToken(ctx context.Context) (*Token, error) {
	cc := &clientcredentials.Config{
		ClientID:     c.clientID,
		ClientSecret: c.clientSecret,
		TokenURL:     c.endpoint.TokenURL,
	}
	tok, err := cc.Token(c.context(ctx))
	if err != nil {
		return nil, fmt.Errorf("requesting client token: %w", wrapTokenError(err))
	}
	return fromOAuth2(tok), nil
}

// AuthorizationURL builds the URL a user visits to authorize the
// application. A random state is generated when state is empty; the
// returned state must be compared against the redirect.
func (c *Credentials) AuthorizationURL(state string, scopes ...string) (authURL, usedState string) {
	if state == "" {
		state = uuid.NewString()
	}
	return c.config(Scope(scopes)).AuthCodeURL(state), state
}

// RequestUserToken exchanges an authorization code for a user token.
func (c *Credentials) RequestUserToken(ctx context.Context, code string) (*Token, error) {
	tok, err := c.config(nil).Exchange(c.context(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", wrapTokenError(err))
	}
	return fromOAuth2(tok), nil
}

// RefreshUserToken requests a fresh access token using a refresh token.
// The accounts service omits the refresh token from refresh responses,
// so the original one is carried over on the returned token.
func (c *Credentials) RefreshUserToken(ctx context.Context, refreshToken string) (*Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token is empty")
	}
	seed := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour), // force a refresh
	}
	tok, err := c.config(nil).TokenSource(c.context(ctx), seed).Token()
	if err != nil {
		return nil, fmt.Errorf("refreshing user token: %w", wrapTokenError(err))
	}
	out := fromOAuth2(tok)
	if out.RefreshToken == "" {
		out.RefreshToken = refreshToken
	}
	return out, nil
}

// ParseCodeFromURL extracts the authorization code from a redirect URL.
// Errors when the code is missing or appears more than once.
func ParseCodeFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing redirect url: %w", err)
	}
	codes := u.Query()["code"]
	switch len(codes) {
	case 0:
		return "", errors.New("no code found in redirect url")
	case 1:
		return codes[0], nil
	default:
		return "", errors.New("multiple codes found in redirect url")
	}
}
