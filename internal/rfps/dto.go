package rfps

// CreateInput carries the fields accepted when creating an RFP directly.
type CreateInput struct {
	Name                 string       `json:"name"`
	AgencyName           string       `json:"agency_name"`
	AdvertiserClientName string       `json:"advertiser_client_name"`
	CampaignType         string       `json:"campaign_type"`
	BudgetRange          string       `json:"budget_range"`
	DueDate              string       `json:"due_date"`
	Status               string       `json:"status"`
	Content              string       `json:"content"`
	AIProcessingEnabled  *bool        `json:"ai_processing_enabled"`
	TeamMembers          []TeamMember `json:"team_members"`
}

// UpdateInput carries a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name                 *string       `json:"name"`
	AgencyName           *string       `json:"agency_name"`
	AdvertiserClientName *string       `json:"advertiser_client_name"`
	CampaignType         *string       `json:"campaign_type"`
	BudgetRange          *string       `json:"budget_range"`
	DueDate              *string       `json:"due_date"`
	Status               *string       `json:"status"`
	CompletionPercentage *int          `json:"completion_percentage"`
	Content              *string       `json:"content"`
	TeamMembers          *[]TeamMember `json:"team_members"`
}

// ImportInput is the import-wizard payload. Blank fields fall back to the
// values extracted from the selected email attachment.
type ImportInput struct {
	ImportMethod         string       `json:"import_method"`
	EmailID              string       `json:"email_id"`
	RFPName              string       `json:"rfp_name"`
	AgencyName           string       `json:"agency_name"`
	AdvertiserClientName string       `json:"advertiser_client_name"`
	CampaignType         string       `json:"campaign_type"`
	BudgetRange          string       `json:"budget_range"`
	DueDate              string       `json:"due_date"`
	AIProcessingEnabled  *bool        `json:"ai_processing_enabled"`
	TeamMembers          []TeamMember `json:"team_members"`
}

// ListResult is a page of RFPs plus paging metadata.
type ListResult struct {
	RFPs        []RFP
	Total       int
	Pages       int
	CurrentPage int
}
