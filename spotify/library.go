package spotify

import (
	"context"
	"net/url"
	"strings"

	"github.com/andsko/chorus/model"
)

// Library endpoints require the user-library-read scope for reads and
// user-library-modify for writes.

// SavedAlbums gets albums saved in the current user's library.
// Options: WithMarket, WithLimit, WithOffset.
func (c *Client) SavedAlbums(ctx context.Context, opts ...RequestOption) (*model.Paging[model.SavedAlbum], error) {
	var out model.Paging[model.SavedAlbum]
	if err := c.get(ctx, "me/albums", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveAlbums saves albums to the current user's library (max 50).
func (c *Client) SaveAlbums(ctx context.Context, albumIDs []string) error {
	return c.put(ctx, "me/albums", idQuery(albumIDs), nil, nil)
}

// RemoveSavedAlbums removes albums from the current user's library.
func (c *Client) RemoveSavedAlbums(ctx context.Context, albumIDs []string) error {
	return c.delete(ctx, "me/albums", idQuery(albumIDs), nil)
}

// SavedAlbumsContains checks whether albums are saved in the current
// user's library. The result is in the order of the given IDs.
func (c *Client) SavedAlbumsContains(ctx context.Context, albumIDs []string) ([]bool, error) {
	var out []bool
	if err := c.get(ctx, "me/albums/contains", idQuery(albumIDs), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SavedTracks gets tracks saved in the current user's library.
// Options: WithMarket, WithLimit, WithOffset.
func (c *Client) SavedTracks(ctx context.Context, opts ...RequestOption) (*model.Paging[model.SavedTrack], error) {
	var out model.Paging[model.SavedTrack]
	if err := c.get(ctx, "me/tracks", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveTracks saves tracks to the current user's library (max 50).
func (c *Client) SaveTracks(ctx context.Context, trackIDs []string) error {
	return c.put(ctx, "me/tracks", idQuery(trackIDs), nil, nil)
}

// RemoveSavedTracks removes tracks from the current user's library.
func (c *Client) RemoveSavedTracks(ctx context.Context, trackIDs []string) error {
	return c.delete(ctx, "me/tracks", idQuery(trackIDs), nil)
}

// SavedTracksContains checks whether tracks are saved in the current
// user's library. The result is in the order of the given IDs.
func (c *Client) SavedTracksContains(ctx context.Context, trackIDs []string) ([]bool, error) {
	var out []bool
	if err := c.get(ctx, "me/tracks/contains", idQuery(trackIDs), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func idQuery(ids []string) url.Values {
	return url.Values{"ids": {strings.Join(ids, ",")}}
}
