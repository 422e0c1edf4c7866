package spotify

import (
	"context"
	"net/url"
	"strings"

	"github.com/andsko/chorus/model"
)

// Follow endpoints require the user-follow-read scope for reads and
// user-follow-modify for writes.

// FollowedArtists gets artists the current user follows. Traverse with
// WithAfter set to the returned cursor. Options: WithLimit, WithAfter.
func (c *Client) FollowedArtists(ctx context.Context, opts ...RequestOption) (*model.CursorPaging[model.FullArtist], error) {
	q := query(opts)
	q.Set("type", "artist")

	var out struct {
		Artists model.CursorPaging[model.FullArtist] `json:"artists"`
	}
	if err := c.get(ctx, "me/following", q, &out); err != nil {
		return nil, err
	}
	return &out.Artists, nil
}

// FollowArtists follows artists as the current user (max 50).
func (c *Client) FollowArtists(ctx context.Context, artistIDs []string) error {
	return c.put(ctx, "me/following", followQuery("artist", artistIDs), nil, nil)
}

// UnfollowArtists unfollows artists as the current user.
func (c *Client) UnfollowArtists(ctx context.Context, artistIDs []string) error {
	return c.delete(ctx, "me/following", followQuery("artist", artistIDs), nil)
}

// IsFollowingArtists checks whether the current user follows artists.
// The result is in the order of the given IDs.
func (c *Client) IsFollowingArtists(ctx context.Context, artistIDs []string) ([]bool, error) {
	var out []bool
	if err := c.get(ctx, "me/following/contains", followQuery("artist", artistIDs), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FollowUsers follows users as the current user (max 50).
func (c *Client) FollowUsers(ctx context.Context, userIDs []string) error {
	return c.put(ctx, "me/following", followQuery("user", userIDs), nil, nil)
}

// UnfollowUsers unfollows users as the current user.
func (c *Client) UnfollowUsers(ctx context.Context, userIDs []string) error {
	return c.delete(ctx, "me/following", followQuery("user", userIDs), nil)
}

// IsFollowingUsers checks whether the current user follows users.
func (c *Client) IsFollowingUsers(ctx context.Context, userIDs []string) ([]bool, error) {
	var out []bool
	if err := c.get(ctx, "me/following/contains", followQuery("user", userIDs), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func followQuery(kind string, ids []string) url.Values {
	return url.Values{
		"type": {kind},
		"ids":  {strings.Join(ids, ",")},
	}
}
