package model

// Category tags items in Spotify, e.g. on the browse surface.
type Category struct {
	Href  string  `json:"href"`
	Icons []Image `json:"icons"`
	ID    string  `json:"id"`
	Name  string  `json:"name"`
}
