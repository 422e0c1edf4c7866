package sender

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/andsko/chorus/internal/logging"
)

// Caching wraps a sender with a conditional-request cache. Fresh
// responses (within max-age) are served without a network round trip;
// stale entries with an ETag are revalidated with If-None-Match and
// served on 304. Only GET requests are cached, keyed by URL, so a
// caching sender must not be shared between users for per-user
// endpoints.
type Caching struct {
	inner Sender
	store *CacheStore
	log   *logging.Logger
	now   func() time.Time
}

// NewCaching wraps inner with the given cache store.
func NewCaching(inner Sender, store *CacheStore, log *logging.Logger) *Caching {
	if log == nil {
		log = logging.Nop()
	}
	return &Caching{
		inner: inner,
		store: store,
		log:   log.Sub("cache"),
		now:   time.Now,
	}
}

// Do sends the request, consulting and maintaining the cache.
func (s *Caching) Do(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return s.inner.Do(req)
	}

	key := req.URL.String()
	cached, ok, err := s.store.Get(key)
	if err != nil {
		s.log.Warn().Err(err).Str("url", key).Msg("cache read failed")
		ok = false
	}

	if ok && !cached.FreshUntil.IsZero() && s.now().Before(cached.FreshUntil) {
		s.log.Debug().Str("url", key).Msg("cache hit (fresh)")
		return s.replay(req, cached), nil
	}

	if ok && cached.ETag != "" {
		req.Header.Set("If-None-Match", cached.ETag)
	}

	resp, err := s.inner.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotModified && ok {
		resp.Body.Close()
		s.log.Debug().Str("url", key).Msg("cache hit (revalidated)")
		cached.FreshUntil = s.freshUntil(resp.Header)
		if err := s.store.Put(key, cached); err != nil {
			s.log.Warn().Err(err).Str("url", key).Msg("cache update failed")
		}
		return s.replay(req, cached), nil
	}

	if resp.StatusCode == http.StatusOK {
		s.maybeStore(key, resp)
	}
	return resp, nil
}

// replay synthesizes an HTTP response from a cache entry.
func (s *Caching) replay(req *http.Request, cached CachedResponse) *http.Response {
	header := http.Header{}
	if cached.ContentType != "" {
		header.Set("Content-Type", cached.ContentType)
	}
	if cached.ETag != "" {
		header.Set("ETag", cached.ETag)
	}
	return &http.Response{
		Status:        http.StatusText(cached.Status),
		StatusCode:    cached.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(cached.Body)),
		ContentLength: int64(len(cached.Body)),
		Request:       req,
	}
}

// maybeStore caches a 200 response when its headers allow it, replacing
// resp.Body with a replayable copy.
func (s *Caching) maybeStore(key string, resp *http.Response) {
	cc := resp.Header.Get("Cache-Control")
	if strings.Contains(cc, "no-store") {
		return
	}

	etag := resp.Header.Get("ETag")
	freshUntil := s.freshUntil(resp.Header)
	if etag == "" && freshUntil.IsZero() {
		return
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return
	}

	entry := CachedResponse{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		ETag:        etag,
		FreshUntil:  freshUntil,
		Body:        body,
	}
	if err := s.store.Put(key, entry); err != nil {
		s.log.Warn().Err(err).Str("url", key).Msg("cache write failed")
	}
}

// freshUntil derives the freshness deadline from Cache-Control max-age.
// Zero time when the response cannot be served without revalidation.
func (s *Caching) freshUntil(header http.Header) time.Time {
	for _, directive := range strings.Split(header.Get("Cache-Control"), ",") {
		directive = strings.TrimSpace(directive)
		if v, ok := strings.CutPrefix(directive, "max-age="); ok {
			secs, err := strconv.Atoi(v)
			if err != nil || secs <= 0 {
				return time.Time{}
			}
			return s.now().Add(time.Duration(secs) * time.Second)
		}
	}
	return time.Time{}
}
