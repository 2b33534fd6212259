package client

import (
	"context"
	"net/http"
)

// DashboardSnapshot is the stats payload plus the most recently updated RFPs.
type DashboardSnapshot struct {
	Stats      Stats `json:"stats"`
	RecentRFPs []RFP `json:"recent_rfps"`
}

// GetDashboard fetches the dashboard aggregates.
func (c *Client) GetDashboard(ctx context.Context) (DashboardSnapshot, error) {
	var out DashboardSnapshot
	err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil, &out)
	return out, err
}

// Chat sends a message to the dashboard assistant and returns its reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	err := c.do(ctx, http.MethodPost, "/api/assistant/chat", nil,
		map[string]string{"message": message}, &out)
	return out.Reply, err
}
