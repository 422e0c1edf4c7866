package spotify

import (
	"context"
	"net/url"
	"strings"

	"github.com/andsko/chorus/model"
)

// Track gets a track. Options: WithMarket.
func (c *Client) Track(ctx context.Context, trackID string, opts ...RequestOption) (*model.FullTrack, error) {
	var out model.FullTrack
	if err := c.get(ctx, "tracks/"+trackID, query(opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Tracks gets multiple tracks (max 50). Unknown IDs yield nil entries.
// Options: WithMarket.
func (c *Client) Tracks(ctx context.Context, trackIDs []string, opts ...RequestOption) ([]*model.FullTrack, error) {
	q := query(opts)
	q.Set("ids", strings.Join(trackIDs, ","))

	var out struct {
		Tracks []*model.FullTrack `json:"tracks"`
	}
	if err := c.get(ctx, "tracks", q, &out); err != nil {
		return nil, err
	}
	return out.Tracks, nil
}

// TrackAudioFeatures gets the audio features of a track.
func (c *Client) TrackAudioFeatures(ctx context.Context, trackID string) (*model.AudioFeatures, error) {
	var out model.AudioFeatures
	if err := c.get(ctx, "audio-features/"+trackID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TracksAudioFeatures gets audio features for multiple tracks (max
// 100). Unknown IDs yield nil entries.
func (c *Client) TracksAudioFeatures(ctx context.Context, trackIDs []string) ([]*model.AudioFeatures, error) {
	q := url.Values{"ids": {strings.Join(trackIDs, ",")}}

	var out struct {
		AudioFeatures []*model.AudioFeatures `json:"audio_features"`
	}
	if err := c.get(ctx, "audio-features", q, &out); err != nil {
		return nil, err
	}
	return out.AudioFeatures, nil
}
