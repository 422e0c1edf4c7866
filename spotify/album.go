package spotify

import (
	"context"
	"strings"

	"github.com/andsko/chorus/model"
)

// Album gets an album. Options: WithMarket.
func (c *Client) Album(ctx context.Context, albumID string, opts ...RequestOption) (*model.FullAlbum, error) {
	var out model.FullAlbum
	if err := c.get(ctx, "albums/"+albumID, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Albums gets multiple albums (max 20). Unknown IDs yield nil entries.
// Options: WithMarket.
func (c *Client) Albums(ctx context.Context, albumIDs []string, opts ...RequestOption) ([]*model.FullAlbum, error) {
	q := query(opts)
	q.Set("ids", strings.Join(albumIDs, ","))

	var out struct {
		Albums []*model.FullAlbum `json:"albums"`
	}
	if err := c.get(ctx, "albums", q, &out); err != nil {
		return nil, err
	}
	return out.Albums, nil
}

// AlbumTracks gets the tracks of an album.
// Options: WithMarket, WithLimit, WithOffset.
func (c *Client) AlbumTracks(ctx context.Context, albumID string, opts ...RequestOption) (*model.Paging[model.SimpleTrack], error) {
	var out model.Paging[model.SimpleTrack]
	if err := c.get(ctx, "albums/"+albumID+"/tracks", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
