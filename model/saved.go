package model

import "time"

// SavedAlbum is an album in the current user's library.
type SavedAlbum struct {
	AddedAt time.Time `json:"added_at"`
	Album   FullAlbum `json:"album"`
}

// SavedTrack is a track in the current user's library.
type SavedTrack struct {
	AddedAt time.Time `json:"added_at"`
	Track   FullTrack `json:"track"`
}
