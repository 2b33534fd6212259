package client

import (
	"context"
	"net/http"
)

// ListEmailRFPs fetches the inbound emails available for import.
func (c *Client) ListEmailRFPs(ctx context.Context) ([]Email, error) {
	var out struct {
		Emails []Email `json:"emails"`
	}
	err := c.do(ctx, http.MethodGet, "/api/emails/rfps", nil, nil, &out)
	return out.Emails, err
}
