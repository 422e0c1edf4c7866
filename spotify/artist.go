package spotify

import (
	"context"
	"net/url"
	"strings"

	"github.com/andsko/chorus/model"
)

// Artist gets an artist.
func (c *Client) Artist(ctx context.Context, artistID string) (*model.FullArtist, error) {
	var out model.FullArtist
	if err := c.get(ctx, "artists/"+artistID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Artists gets multiple artists (max 50). Unknown IDs yield nil entries.
func (c *Client) Artists(ctx context.Context, artistIDs []string) ([]*model.FullArtist, error) {
	q := url.Values{"ids": {strings.Join(artistIDs, ",")}}

	var out struct {
		Artists []*model.FullArtist `json:"artists"`
	}
	if err := c.get(ctx, "artists", q, &out); err != nil {
		return nil, err
	}
	return out.Artists, nil
}

// ArtistAlbums gets an artist's albums.
// Options: WithIncludeGroups, WithMarket, WithLimit, WithOffset.
func (c *Client) ArtistAlbums(ctx context.Context, artistID string, opts ...RequestOption) (*model.Paging[model.SimpleAlbum], error) {
	var out model.Paging[model.SimpleAlbum]
	if err := c.get(ctx, "artists/"+artistID+"/albums", query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ArtistTopTracks gets an artist's top tracks in a market. The market
// parameter is required by the API; "from_token" uses the token's
// country.
func (c *Client) ArtistTopTracks(ctx context.Context, artistID, market string) ([]model.FullTrack, error) {
	q := url.Values{"market": {market}}

	var out struct {
		Tracks []model.FullTrack `json:"tracks"`
	}
	if err := c.get(ctx, "artists/"+artistID+"/top-tracks", q, &out); err != nil {
		return nil, err
	}
	return out.Tracks, nil
}

// ArtistRelatedArtists gets artists similar to an artist.
func (c *Client) ArtistRelatedArtists(ctx context.Context, artistID string) ([]model.FullArtist, error) {
	var out struct {
		Artists []model.FullArtist `json:"artists"`
	}
	if err := c.get(ctx, "artists/"+artistID+"/related-artists", nil, &out); err != nil {
		return nil, err
	}
	return out.Artists, nil
}
