package model

import "time"

// TracksRef is a link to a playlist's tracks with a total count.
type TracksRef struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// SimplePlaylist is a playlist as returned by listing endpoints.
type SimplePlaylist struct {
	Collaborative bool         `json:"collaborative"`
	Description   string       `json:"description"`
	ExternalURLs  ExternalURLs `json:"external_urls"`
	Href          string       `json:"href"`
	ID            string       `json:"id"`
	Images        []Image      `json:"images"`
	Name          string       `json:"name"`
	Owner         PublicUser   `json:"owner"`
	Public        *bool        `json:"public"`
	SnapshotID    string       `json:"snapshot_id"`
	Tracks        TracksRef    `json:"tracks"`
	Type          string       `json:"type"`
	URI           string       `json:"uri"`
}

// PlaylistTrack is a track inside a playlist, with addition metadata.
type PlaylistTrack struct {
	AddedAt time.Time  `json:"added_at"`
	AddedBy PublicUser `json:"added_by"`
	IsLocal bool       `json:"is_local"`
	Track   FullTrack  `json:"track"`
}

// FullPlaylist is a complete playlist object including its first page
// of tracks.
type FullPlaylist struct {
	Collaborative bool                  `json:"collaborative"`
	Description   string                `json:"description"`
	ExternalURLs  ExternalURLs          `json:"external_urls"`
	Followers     Followers             `json:"followers"`
	Href          string                `json:"href"`
	ID            string                `json:"id"`
	Images        []Image               `json:"images"`
	Name          string                `json:"name"`
	Owner         PublicUser            `json:"owner"`
	Public        *bool                 `json:"public"`
	SnapshotID    string                `json:"snapshot_id"`
	Tracks        Paging[PlaylistTrack] `json:"tracks"`
	Type          string                `json:"type"`
	URI           string                `json:"uri"`
}
