package spotify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// APIError is an error response from the Web API.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter time.Duration // set on 429 responses carrying Retry-After
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify: API error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("spotify: API error (%d): %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the request may succeed.
func (e *APIError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable:
		return true
	}
	return false
}

// errorEnvelope is the Web API error shape:
// {"error": {"status": 404, "message": "..."}}.
type errorEnvelope struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Message != "" {
		apiErr.Message = env.Error.Message
	} else if len(body) > 0 {
		apiErr.Message = string(body)
	}

	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return apiErr
}
