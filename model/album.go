package model

// SimpleAlbum is an album as embedded in tracks and search results.
type SimpleAlbum struct {
	AlbumGroup           string         `json:"album_group,omitempty"` // only on artist album listings
	AlbumType            string         `json:"album_type"`
	Artists              []SimpleArtist `json:"artists"`
	AvailableMarkets     []string       `json:"available_markets,omitempty"`
	ExternalURLs         ExternalURLs   `json:"external_urls"`
	Href                 string         `json:"href"`
	ID                   string         `json:"id"`
	Images               []Image        `json:"images"`
	Name                 string         `json:"name"`
	ReleaseDate          string         `json:"release_date"`
	ReleaseDatePrecision string         `json:"release_date_precision"` // "year" | "month" | "day"
	Restrictions         *Restrictions  `json:"restrictions,omitempty"`
	TotalTracks          int            `json:"total_tracks"`
	Type                 string         `json:"type"`
	URI                  string         `json:"uri"`
}

// FullAlbum is a complete album object including its tracks.
type FullAlbum struct {
	SimpleAlbum
	Copyrights  []Copyright         `json:"copyrights"`
	ExternalIDs ExternalIDs         `json:"external_ids"`
	Genres      []string            `json:"genres"`
	Label       string              `json:"label"`
	Popularity  int                 `json:"popularity"`
	Tracks      Paging[SimpleTrack] `json:"tracks"`
}
