package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListParams filters and pages the RFP list.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
	Status  string
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	return q
}

// ListRFPsResult is a page of RFPs plus paging metadata.
type ListRFPsResult struct {
	RFPs        []RFP `json:"rfps"`
	Total       int   `json:"total"`
	Pages       int   `json:"pages"`
	CurrentPage int   `json:"current_page"`
}

// ListRFPs fetches a filtered page of RFPs.
func (c *Client) ListRFPs(ctx context.Context, params ListParams) (ListRFPsResult, error) {
	var out ListRFPsResult
	err := c.do(ctx, http.MethodGet, "/api/rfps", params.values(), nil, &out)
	return out, err
}

// GetRFP fetches a single RFP by ID.
func (c *Client) GetRFP(ctx context.Context, id string) (RFP, error) {
	var out struct {
		RFP RFP `json:"rfp"`
	}
	err := c.do(ctx, http.MethodGet, "/api/rfps/"+url.PathEscape(id), nil, nil, &out)
	return out.RFP, err
}

// CreateRFPInput carries the fields accepted when creating an RFP.
type CreateRFPInput struct {
	Name                 string       `json:"name"`
	AgencyName           string       `json:"agency_name"`
	AdvertiserClientName string       `json:"advertiser_client_name,omitempty"`
	CampaignType         string       `json:"campaign_type"`
	BudgetRange          string       `json:"budget_range"`
	DueDate              string       `json:"due_date"`
	Status               string       `json:"status,omitempty"`
	Content              string       `json:"content,omitempty"`
	AIProcessingEnabled  *bool        `json:"ai_processing_enabled,omitempty"`
	TeamMembers          []TeamMember `json:"team_members,omitempty"`
}

// CreateRFP creates an RFP.
func (c *Client) CreateRFP(ctx context.Context, in CreateRFPInput) (RFP, error) {
	var out struct {
		RFP RFP `json:"rfp"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps", nil, in, &out)
	return out.RFP, err
}

// UpdateRFPInput carries a partial update; nil fields are left unchanged.
type UpdateRFPInput struct {
	Name                 *string       `json:"name,omitempty"`
	AgencyName           *string       `json:"agency_name,omitempty"`
	AdvertiserClientName *string       `json:"advertiser_client_name,omitempty"`
	CampaignType         *string       `json:"campaign_type,omitempty"`
	BudgetRange          *string       `json:"budget_range,omitempty"`
	DueDate              *string       `json:"due_date,omitempty"`
	Status               *string       `json:"status,omitempty"`
	CompletionPercentage *int          `json:"completion_percentage,omitempty"`
	Content              *string       `json:"content,omitempty"`
	TeamMembers          *[]TeamMember `json:"team_members,omitempty"`
}

// UpdateRFP applies a partial update to an RFP.
func (c *Client) UpdateRFP(ctx context.Context, id string, in UpdateRFPInput) (RFP, error) {
	var out struct {
		RFP RFP `json:"rfp"`
	}
	err := c.do(ctx, http.MethodPut, "/api/rfps/"+url.PathEscape(id), nil, in, &out)
	return out.RFP, err
}

// DeleteRFP removes an RFP.
func (c *Client) DeleteRFP(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/rfps/"+url.PathEscape(id), nil, nil, nil)
}

// ImportRFPInput is the import wizard payload.
type ImportRFPInput struct {
	ImportMethod         string       `json:"import_method"`
	EmailID              string       `json:"email_id,omitempty"`
	RFPName              string       `json:"rfp_name,omitempty"`
	AgencyName           string       `json:"agency_name,omitempty"`
	AdvertiserClientName string       `json:"advertiser_client_name,omitempty"`
	CampaignType         string       `json:"campaign_type,omitempty"`
	BudgetRange          string       `json:"budget_range,omitempty"`
	DueDate              string       `json:"due_date,omitempty"`
	AIProcessingEnabled  *bool        `json:"ai_processing_enabled,omitempty"`
	TeamMembers          []TeamMember `json:"team_members,omitempty"`
}

// ImportRFP creates an RFP from the import wizard payload.
func (c *Client) ImportRFP(ctx context.Context, in ImportRFPInput) (RFP, error) {
	var out struct {
		RFP RFP `json:"rfp"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/import", nil, in, &out)
	return out.RFP, err
}

// SeedSampleData replaces all RFPs with the demo fixture set.
func (c *Client) SeedSampleData(ctx context.Context) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/sample-data", nil, nil, &out)
	return out.Message, err
}

// AnalyzeRFP runs the AI analysis for an RFP.
func (c *Client) AnalyzeRFP(ctx context.Context, id string) (Analysis, error) {
	var out struct {
		Analysis Analysis `json:"analysis"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/"+url.PathEscape(id)+"/analyze", nil, nil, &out)
	return out.Analysis, err
}

// GenerateProposal generates a proposal for an RFP.
func (c *Client) GenerateProposal(ctx context.Context, id string) (Proposal, error) {
	var out struct {
		Proposal Proposal `json:"proposal"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/"+url.PathEscape(id)+"/generate-proposal", nil, nil, &out)
	return out.Proposal, err
}

// QualityCheckRFP scores the RFP's proposal.
func (c *Client) QualityCheckRFP(ctx context.Context, id string) (QualityCheck, error) {
	var out struct {
		QualityCheck QualityCheck `json:"quality_check"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/"+url.PathEscape(id)+"/quality-check", nil, nil, &out)
	return out.QualityCheck, err
}

// ExtractPlacements returns the media placements found in the RFP content.
func (c *Client) ExtractPlacements(ctx context.Context, id string) ([]Placement, error) {
	var out struct {
		Placements []Placement `json:"placements"`
	}
	err := c.do(ctx, http.MethodPost, "/api/rfps/"+url.PathEscape(id)+"/extract-placements", nil, nil, &out)
	return out.Placements, err
}
