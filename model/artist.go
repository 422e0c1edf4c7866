package model

// SimpleArtist is an artist as embedded in albums and tracks.
type SimpleArtist struct {
	ExternalURLs ExternalURLs `json:"external_urls"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// FullArtist is a complete artist object.
type FullArtist struct {
	SimpleArtist
	Followers  Followers `json:"followers"`
	Genres     []string  `json:"genres"`
	Images     []Image   `json:"images"`
	Popularity int       `json:"popularity"`
}
