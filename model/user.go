package model

// PublicUser is another user's public profile.
type PublicUser struct {
	DisplayName  string       `json:"display_name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	Followers    Followers    `json:"followers"`
	Href         string       `json:"href"`
	ID           string       `json:"id"`
	Images       []Image      `json:"images"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
}

// PrivateUser is the current user's profile. Country, email and product
// require the corresponding user-read scopes and are empty otherwise.
type PrivateUser struct {
	PublicUser
	Country string `json:"country,omitempty"`
	Email   string `json:"email,omitempty"`
	Product string `json:"product,omitempty"` // "free" | "open" | "premium"
}
