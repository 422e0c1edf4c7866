// Package spotify implements a client for the Spotify Web API.
package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/andsko/chorus/internal/logging"
	"github.com/andsko/chorus/sender"
)

// DefaultBaseURL is the Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// TokenProvider supplies a valid access token for each request.
// auth.RefreshingToken implements it; StaticToken adapts a raw value.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// StaticToken is a fixed access token value.
type StaticToken string

// AccessToken returns the token value.
func (t StaticToken) AccessToken(context.Context) (string, error) {
	return string(t), nil
}

// Client calls the Spotify Web API. Construct with New; the zero value
// is not usable.
type Client struct {
	baseURL string
	token   TokenProvider
	sender  sender.Sender
	log     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithSender replaces the HTTP sender chain.
func WithSender(s sender.Sender) Option {
	return func(c *Client) { c.sender = s }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *logging.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Web API client authenticating with the given token
// provider.
func New(token TokenProvider, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		sender:  sender.NewTransient(30 * time.Second),
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Sub("spotify")
	return c
}

func (c *Client) url(path string, q url.Values) string {
	u := c.baseURL + "/" + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.send(ctx, http.MethodGet, c.url(path, q), nil, out)
}

func (c *Client) put(ctx context.Context, path string, q url.Values, body, out any) error {
	return c.send(ctx, http.MethodPut, c.url(path, q), body, out)
}

func (c *Client) post(ctx context.Context, path string, q url.Values, body, out any) error {
	return c.send(ctx, http.MethodPost, c.url(path, q), body, out)
}

func (c *Client) delete(ctx context.Context, path string, q url.Values, body any) error {
	return c.send(ctx, http.MethodDelete, c.url(path, q), body, nil)
}

// send performs a request against a full URL and decodes the JSON
// response into out when non-nil.
func (c *Client) send(ctx context.Context, method, urlStr string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	tok, err := c.token.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("resolving access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.sender.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("url", urlStr).
		Int("status", resp.StatusCode).
		Msg("request")

	if resp.StatusCode >= 400 {
		return decodeError(resp, data)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}
