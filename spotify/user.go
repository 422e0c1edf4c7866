package spotify

import (
	"context"

	"github.com/andsko/chorus/model"
)

// CurrentUser gets the current user's profile. Country, email and
// product require the user-read-private and user-read-email scopes.
func (c *Client) CurrentUser(ctx context.Context) (*model.PrivateUser, error) {
	var out model.PrivateUser
	if err := c.get(ctx, "me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// User gets a user's public profile.
func (c *Client) User(ctx context.Context, userID string) (*model.PublicUser, error) {
	var out model.PublicUser
	if err := c.get(ctx, "users/"+userID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
