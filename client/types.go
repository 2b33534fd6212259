package client

import "time"

// RFP statuses as rendered by the dashboard.
const (
	StatusNew         = "New"
	StatusInProgress  = "In Progress"
	StatusUnderReview = "Under Review"
	StatusCompleted   = "Completed"
	StatusUrgent      = "Urgent"
	StatusNotStarted  = "Not Started"
)

// StatusAll is the filter sentinel meaning "no status filter".
const StatusAll = "All Status"

// RFP is a media-advertising request for proposal as returned by the API.
type RFP struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	AgencyName           string        `json:"agency_name"`
	AdvertiserClientName string        `json:"advertiser_client_name"`
	CampaignType         string        `json:"campaign_type"`
	BudgetRange          string        `json:"budget_range"`
	DueDate              string        `json:"due_date"`
	Status               string        `json:"status"`
	CompletionPercentage int           `json:"completion_percentage"`
	Content              string        `json:"content"`
	AIProcessingEnabled  bool          `json:"ai_processing_enabled"`
	TeamMembers          []TeamMember  `json:"team_members"`
	Attachments          []Attachment  `json:"attachments"`
	Analysis             *Analysis     `json:"analysis,omitempty"`
	Proposal             *Proposal     `json:"proposal,omitempty"`
	QualityCheck         *QualityCheck `json:"quality_check,omitempty"`
	SubmittedDate        string        `json:"submitted_date,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// TeamMember is a person assigned to an RFP.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email,omitempty"`
}

// Attachment describes a document attached to an RFP.
type Attachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type,omitempty"`
	Size     string `json:"size,omitempty"`
}

// Analysis is the AI assessment attached to an RFP.
type Analysis struct {
	ConfidenceScore float64  `json:"confidence_score"`
	KeyInsights     []string `json:"key_insights"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"risk_factors"`
	SuccessMetrics  []string `json:"success_metrics"`
}

// Proposal is a generated media proposal.
type Proposal struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Sections    map[string]string `json:"sections"`
	NextSteps   []string          `json:"next_steps"`
}

// QualityCheck scores a generated proposal across categories.
type QualityCheck struct {
	OverallScore    int                `json:"overall_score"`
	ChecksPerformed []QualityCheckItem `json:"checks_performed"`
}

// QualityCheckItem is one scored category of a quality check.
type QualityCheckItem struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
	Status   string `json:"status"`
}

// Placement is a media placement extracted from RFP content.
type Placement struct {
	Channel  string `json:"channel"`
	Budget   string `json:"budget"`
	Duration string `json:"duration"`
}

// Email is an inbound message carrying RFP documents.
type Email struct {
	ID          string            `json:"id"`
	Subject     string            `json:"subject"`
	Sender      string            `json:"sender"`
	Attachments []EmailAttachment `json:"attachments"`
}

// EmailAttachment is a file attached to an inbound RFP email.
type EmailAttachment struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

// Article is a knowledge base entry.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Type        string   `json:"type"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Views       int      `json:"views"`
	Rating      float64  `json:"rating"`
	CreatedDate string   `json:"created_date"`
}

// Stats is the aggregate snapshot shown on the dashboard.
type Stats struct {
	ActiveRFPs        int     `json:"active_rfps"`
	PendingPlacements int     `json:"pending_placements"`
	AIResponseRate    int     `json:"ai_response_rate"`
	WinRate           int     `json:"win_rate"`
	DueThisWeek       int     `json:"due_this_week"`
	CompletionRate    int     `json:"completion_rate"`
	PotentialRevenue  float64 `json:"potential_revenue"`
}
