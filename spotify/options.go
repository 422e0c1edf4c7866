package spotify

import (
	"net/url"
	"strconv"
	"strings"
)

// RequestOption adds an optional query parameter to an endpoint call.
type RequestOption func(url.Values)

// WithLimit sets the number of items to return.
func WithLimit(n int) RequestOption {
	return func(q url.Values) { q.Set("limit", strconv.Itoa(n)) }
}

// WithOffset sets the index of the first item to return.
func WithOffset(n int) RequestOption {
	return func(q url.Values) { q.Set("offset", strconv.Itoa(n)) }
}

// WithCountry sets an ISO 3166-1 alpha-2 country code.
func WithCountry(code string) RequestOption {
	return func(q url.Values) { q.Set("country", code) }
}

// WithLocale sets the desired language as a lowercase ISO 639 language
// code and an uppercase ISO 3166-1 alpha-2 country code joined by an
// underscore, e.g. "es_MX".
func WithLocale(locale string) RequestOption {
	return func(q url.Values) { q.Set("locale", locale) }
}

// WithMarket sets an ISO 3166-1 alpha-2 country code or "from_token"
// for track relinking.
func WithMarket(market string) RequestOption {
	return func(q url.Values) { q.Set("market", market) }
}

// WithTimestamp sets the user's local time (ISO 8601,
// yyyy-MM-ddTHH:mm:ss) to tailor results to a time of day.
func WithTimestamp(ts string) RequestOption {
	return func(q url.Values) { q.Set("timestamp", ts) }
}

// WithIncludeGroups filters artist albums by group: "album", "single",
// "appears_on", "compilation".
func WithIncludeGroups(groups ...string) RequestOption {
	return func(q url.Values) { q.Set("include_groups", strings.Join(groups, ",")) }
}

// WithAfter sets the cursor position for cursor-based paging.
func WithAfter(id string) RequestOption {
	return func(q url.Values) { q.Set("after", id) }
}

func query(opts []RequestOption) url.Values {
	q := url.Values{}
	for _, opt := range opts {
		opt(q)
	}
	return q
}
