// Package model defines typed representations of Spotify Web API objects.
package model

// Image is a cover art or profile image in one resolution.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers holds follower information for an artist, playlist or user.
type Followers struct {
	Href  string `json:"href"`
	Total int    `json:"total"`
}

// Copyright is a copyright statement on an album.
type Copyright struct {
	Text string `json:"text"`
	Type string `json:"type"` // "C" (copyright) or "P" (performance)
}

// ExternalURLs maps URL type (e.g. "spotify") to a URL.
type ExternalURLs map[string]string

// ExternalIDs maps known external ID types (isrc, ean, upc) to values.
type ExternalIDs map[string]string

// Restrictions explains why content is unavailable, e.g. "market".
type Restrictions struct {
	Reason string `json:"reason"`
}
