package spotify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/andsko/chorus/model"
)

// FeaturedPlaylists is the browse featured-playlists result: a display
// message and a page of playlists.
type FeaturedPlaylists struct {
	Message   string                             `json:"message"`
	Playlists model.Paging[model.SimplePlaylist] `json:"playlists"`
}

// NewReleases is the browse new-releases result.
type NewReleases struct {
	Message string                          `json:"message"`
	Albums  model.Paging[model.SimpleAlbum] `json:"albums"`
}

// FeaturedPlaylists gets a list of featured playlists.
// Options: WithCountry, WithLocale, WithTimestamp, WithLimit, WithOffset.
func (c *Client) FeaturedPlaylists(ctx context.Context, opts ...RequestOption) (*FeaturedPlaylists, error) {
	var out FeaturedPlaylists
	if err := c.get(ctx, "browse/featured-playlists", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NewReleases gets a list of new album releases featured in Spotify.
// Options: WithCountry, WithLimit, WithOffset.
func (c *Client) NewReleases(ctx context.Context, opts ...RequestOption) (*NewReleases, error) {
	var out NewReleases
	if err := c.get(ctx, "browse/new-releases", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories gets a list of categories used to tag items in Spotify.
// Options: WithCountry, WithLocale, WithLimit, WithOffset.
func (c *Client) Categories(ctx context.Context, opts ...RequestOption) (*model.Paging[model.Category], error) {
	var out struct {
		Categories model.Paging[model.Category] `json:"categories"`
	}
	if err := c.get(ctx, "browse/categories", query(opts), &out); err != nil {
		return nil, err
	}
	return &out.Categories, nil
}

// Category gets a single category. Options: WithCountry, WithLocale.
func (c *Client) Category(ctx context.Context, categoryID string, opts ...RequestOption) (*model.Category, error) {
	var out model.Category
	if err := c.get(ctx, "browse/categories/"+categoryID, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CategoryPlaylists gets playlists tagged with a category.
// Options: WithCountry, WithLimit, WithOffset.
func (c *Client) CategoryPlaylists(ctx context.Context, categoryID string, opts ...RequestOption) (*model.Paging[model.SimplePlaylist], error) {
	var out struct {
		Playlists model.Paging[model.SimplePlaylist] `json:"playlists"`
	}
	path := fmt.Sprintf("browse/categories/%s/playlists", categoryID)
	if err := c.get(ctx, path, query(opts), &out); err != nil {
		return nil, err
	}
	return &out.Playlists, nil
}

// Seeds are the starting points of a recommendation request. At least
// one artist, genre or track is required; up to five in total.
type Seeds struct {
	Artists []string
	Genres  []string
	Tracks  []string
}

func (s Seeds) empty() bool {
	return len(s.Artists) == 0 && len(s.Genres) == 0 && len(s.Tracks) == 0
}

// TrackAttributes are tuneable attribute filters for recommendations,
// keyed as <prefix>_<attribute> where prefix is min, max or target,
// e.g. "min_energy" or "target_tempo".
type TrackAttributes map[string]float64

var recommendationPrefixes = map[string]bool{
	"min": true, "max": true, "target": true,
}

var recommendationAttributes = map[string]bool{
	"acousticness":     true,
	"danceability":     true,
	"duration_ms":      true,
	"energy":           true,
	"instrumentalness": true,
	"key":              true,
	"liveness":         true,
	"loudness":         true,
	"mode":             true,
	"popularity":       true,
	"speechiness":      true,
	"tempo":            true,
	"time_signature":   true,
	"valence":          true,
}

func (a TrackAttributes) validate() error {
	for name := range a {
		prefix, attr, ok := strings.Cut(name, "_")
		if !ok || !recommendationPrefixes[prefix] || !recommendationAttributes[attr] {
			return fmt.Errorf("unknown tuneable attribute %q", name)
		}
	}
	return nil
}

// Recommendations gets recommended tracks for the given seeds. Unknown
// attribute names are rejected. Options: WithLimit, WithMarket.
func (c *Client) Recommendations(ctx context.Context, seeds Seeds, attributes TrackAttributes, opts ...RequestOption) (*model.Recommendations, error) {
	if seeds.empty() {
		return nil, errors.New("at least one seed artist, genre or track is required")
	}
	if err := attributes.validate(); err != nil {
		return nil, err
	}

	q := query(opts)
	if len(seeds.Artists) > 0 {
		q.Set("seed_artists", strings.Join(seeds.Artists, ","))
	}
	if len(seeds.Genres) > 0 {
		q.Set("seed_genres", strings.Join(seeds.Genres, ","))
	}
	if len(seeds.Tracks) > 0 {
		q.Set("seed_tracks", strings.Join(seeds.Tracks, ","))
	}
	for name, value := range attributes {
		q.Set(name, strconv.FormatFloat(value, 'f', -1, 64))
	}

	var out model.Recommendations
	if err := c.get(ctx, "recommendations", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendationGenreSeeds gets the available genre seed names.
func (c *Client) RecommendationGenreSeeds(ctx context.Context) ([]string, error) {
	var out struct {
		Genres []string `json:"genres"`
	}
	if err := c.get(ctx, "recommendations/available-genre-seeds", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}
