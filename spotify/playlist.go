package spotify

import (
	"context"
	"fmt"

	"github.com/andsko/chorus/model"
)

// Playlist gets a playlist. Options: WithMarket.
func (c *Client) Playlist(ctx context.Context, playlistID string, opts ...RequestOption) (*model.FullPlaylist, error) {
	var out model.FullPlaylist
	if err := c.get(ctx, "playlists/"+playlistID, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlaylistItems gets the tracks of a playlist.
// Options: WithMarket, WithLimit, WithOffset.
func (c *Client) PlaylistItems(ctx context.Context, playlistID string, opts ...RequestOption) (*model.Paging[model.PlaylistTrack], error) {
	var out model.Paging[model.PlaylistTrack]
	path := fmt.Sprintf("playlists/%s/tracks", playlistID)
	if err := c.get(ctx, path, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserPlaylists gets a user's public playlists.
// Options: WithLimit, WithOffset.
func (c *Client) UserPlaylists(ctx context.Context, userID string, opts ...RequestOption) (*model.Paging[model.SimplePlaylist], error) {
	var out model.Paging[model.SimplePlaylist]
	path := fmt.Sprintf("users/%s/playlists", userID)
	if err := c.get(ctx, path, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUserPlaylists gets the current user's playlists, both owned
// and followed. Requires playlist-read-private for private playlists.
// Options: WithLimit, WithOffset.
func (c *Client) CurrentUserPlaylists(ctx context.Context, opts ...RequestOption) (*model.Paging[model.SimplePlaylist], error) {
	var out model.Paging[model.SimplePlaylist]
	if err := c.get(ctx, "me/playlists", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
