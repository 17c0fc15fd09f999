package messenger

import (
	"context"
	"net/url"
)

type userProfile struct {
	FirstName string `json:"first_name"`
}

// FirstName fetches the user's display first name from the Graph API.
func (c *Client) FirstName(ctx context.Context, psid string) (string, error) {
	query := url.Values{}
	query.Set("fields", "first_name")

	var profile userProfile
	if err := c.get(ctx, "profile", "/"+psid, query, &profile); err != nil {
		return "", err
	}

	return profile.FirstName, nil
}
