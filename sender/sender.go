// Package sender provides the HTTP sender chain used by the Web API
// client: a plain transient sender, a retrying wrapper and a
// conditional-request cache.
package sender

import (
	"net/http"
	"time"
)

// Sender sends HTTP requests. Implementations may wrap another Sender
// to add retries or caching.
type Sender interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transient sends each request over a plain HTTP client.
type Transient struct {
	client *http.Client
}

// NewTransient creates the default sender. A zero timeout means 30s.
func NewTransient(timeout time.Duration) *Transient {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Transient{client: &http.Client{Timeout: timeout}}
}

// Do sends the request.
func (s *Transient) Do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

// roundTripper adapts a Sender into an http.RoundTripper so it can sit
// beneath clients that expect one.
type roundTripper struct {
	s Sender
}

func (rt roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt.s.Do(req)
}
