package spotify

import (
	"context"
	"strings"

	"github.com/andsko/chorus/model"
)

// SearchType selects which item types a search covers.
type SearchType string

// Search types.
const (
	SearchAlbum    SearchType = "album"
	SearchArtist   SearchType = "artist"
	SearchPlaylist SearchType = "playlist"
	SearchTrack    SearchType = "track"
)

// SearchResult holds one paging per searched item type; pagings for
// types not searched are nil.
type SearchResult struct {
	Albums    *model.Paging[model.SimpleAlbum]    `json:"albums"`
	Artists   *model.Paging[model.FullArtist]     `json:"artists"`
	Playlists *model.Paging[model.SimplePlaylist] `json:"playlists"`
	Tracks    *model.Paging[model.FullTrack]      `json:"tracks"`
}

// Search searches albums, artists, playlists and tracks. An empty type
// list searches all types. Options: WithMarket, WithLimit, WithOffset.
func (c *Client) Search(ctx context.Context, q string, types []SearchType, opts ...RequestOption) (*SearchResult, error) {
	if len(types) == 0 {
		types = []SearchType{SearchAlbum, SearchArtist, SearchPlaylist, SearchTrack}
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	params := query(opts)
	params.Set("q", q)
	params.Set("type", strings.Join(names, ","))

	var out SearchResult
	if err := c.get(ctx, "search", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
