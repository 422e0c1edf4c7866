package sender

import (
	"context"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/andsko/chorus/internal/logging"
)

// Retrying wraps a sender with bounded retries on 429 and 5xx
// responses, honoring Retry-After headers.
type Retrying struct {
	rc *retryablehttp.Client
}

// NewRetrying wraps inner with up to maxRetries retries.
func NewRetrying(inner Sender, maxRetries int, log *logging.Logger) *Retrying {
	if log == nil {
		log = logging.Nop()
	}
	rc := retryablehttp.NewClient()
	rc.HTTPClient = &http.Client{Transport: roundTripper{inner}}
	rc.RetryMax = maxRetries
	rc.CheckRetry = checkRetry
	rc.Logger = retryLogger{log.Sub("retry")}
	return &Retrying{rc: rc}
}

// Do sends the request, retrying transient failures.
func (s *Retrying) Do(req *http.Request) (*http.Response, error) {
	rreq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.rc.Do(rreq.WithContext(req.Context()))
}

// checkRetry extends the default policy with 429, whose backoff honors
// the Retry-After header.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		return true, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// retryLogger adapts the logging wrapper to retryablehttp's
// LeveledLogger interface.
type retryLogger struct {
	log *logging.Logger
}

func (l retryLogger) Error(msg string, kv ...any) { l.log.Error().Fields(kv).Msg(msg) }
func (l retryLogger) Info(msg string, kv ...any)  { l.log.Info().Fields(kv).Msg(msg) }
func (l retryLogger) Debug(msg string, kv ...any) { l.log.Debug().Fields(kv).Msg(msg) }
func (l retryLogger) Warn(msg string, kv ...any)  { l.log.Warn().Fields(kv).Msg(msg) }
