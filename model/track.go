package model

// TrackLink points to the original track when relinking applies.
type TrackLink struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// SimpleTrack is a track as embedded in albums.
type SimpleTrack struct {
	Artists          []SimpleArtist `json:"artists"`
	AvailableMarkets []string       `json:"available_markets,omitempty"`
	DiscNumber       int            `json:"disc_number"`
	DurationMS       int            `json:"duration_ms"`
	Explicit         bool           `json:"explicit"`
	ExternalURLs     ExternalURLs   `json:"external_urls"`
	Href             string         `json:"href"`
	ID               string         `json:"id"`
	IsLocal          bool           `json:"is_local"`
	IsPlayable       *bool          `json:"is_playable,omitempty"` // present when a market is applied
	LinkedFrom       *TrackLink     `json:"linked_from,omitempty"`
	Name             string         `json:"name"`
	PreviewURL       string         `json:"preview_url"`
	Restrictions     *Restrictions  `json:"restrictions,omitempty"`
	TrackNumber      int            `json:"track_number"`
	Type             string         `json:"type"`
	URI              string         `json:"uri"`
}

// FullTrack is a complete track object.
type FullTrack struct {
	SimpleTrack
	Album       SimpleAlbum `json:"album"`
	ExternalIDs ExternalIDs `json:"external_ids"`
	Popularity  int         `json:"popularity"`
}
