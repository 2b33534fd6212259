package rfps

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

// DateFormat is the wire format for calendar dates (due_date, submitted_date).
const DateFormat = "2006-01-02"

// RFP is a media-advertising request for proposal tracked through intake,
// analysis, proposal drafting and quality review.
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

// Attachment describes a document attached to an RFP. Only metadata is
// tracked; binary handling lives outside this service.
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

// Proposal is a generated media proposal. At most one exists per RFP;
// regenerating overwrites it.
type Proposal struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Sections    map[string]string `json:"sections"`
	NextSteps   []string          `json:"next_steps"`
}

// Quality check item statuses.
const (
	QualityExcellent = "excellent"
	QualityGood      = "good"
	QualityPoor      = "poor"
)

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
