package llm

import "fmt"

// RFPSummary carries the RFP fields the prompts interpolate. Kept as plain
// strings so the llm package stays independent of the domain packages.
type RFPSummary struct {
	Name         string
	Agency       string
	Advertiser   string
	CampaignType string
	BudgetRange  string
	DueDate      string
	Content      string
}

// AnalysisPrompt asks for a structured assessment of an RFP.
func AnalysisPrompt(r RFPSummary) string {
	return fmt.Sprintf(`You are a media-planning analyst. Analyze the following advertising RFP and respond with a JSON object only, no prose, using this structure:
{
  "confidence_score": 0.0,
  "key_insights": ["..."],
  "recommendations": ["..."],
  "risk_factors": ["..."],
  "success_metrics": ["..."]
}
confidence_score is a float between 0 and 1. Each list holds 2-4 short strings.

RFP name: %s
Agency: %s
Advertiser: %s
Campaign type: %s
Budget range: %s
Due date: %s
Details: %s`, r.Name, r.Agency, r.Advertiser, r.CampaignType, r.BudgetRange, r.DueDate, r.Content)
}

// ProposalPrompt asks for a structured media proposal for an RFP.
func ProposalPrompt(r RFPSummary) string {
	return fmt.Sprintf(`You are a media-planning strategist. Draft a media proposal for the following advertising RFP and respond with a JSON object only, no prose, using this structure:
{
  "sections": {"executive_summary": "...", "media_strategy": "...", "budget_allocation": "...", "timeline": "..."},
  "next_steps": ["..."]
}
Section values are short paragraphs; next_steps holds 3-4 short strings.

RFP name: %s
Agency: %s
Advertiser: %s
Campaign type: %s
Budget range: %s
Due date: %s
Details: %s`, r.Name, r.Agency, r.Advertiser, r.CampaignType, r.BudgetRange, r.DueDate, r.Content)
}

// ChatPrompt frames an assistant exchange about the user's RFP workload.
func ChatPrompt(message string) string {
	return fmt.Sprintf(`You are an assistant for a media-advertising RFP dashboard. Users ask about their RFPs, proposals and deadlines. Answer in 1-3 short sentences.

User: %s`, message)
}
