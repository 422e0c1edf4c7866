package model

// RecommendationSeed describes how one seed contributed to a
// recommendation result.
type RecommendationSeed struct {
	AfterFilteringSize int    `json:"afterFilteringSize"`
	AfterRelinkingSize int    `json:"afterRelinkingSize"`
	Href               string `json:"href"`
	ID                 string `json:"id"`
	InitialPoolSize    int    `json:"initialPoolSize"`
	Type               string `json:"type"` // "artist" | "track" | "genre"
}

// Recommendations holds recommended tracks and the seeds they came from.
type Recommendations struct {
	Seeds  []RecommendationSeed `json:"seeds"`
	Tracks []FullTrack          `json:"tracks"`
}
