package rfps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"adresponse-backend/internal/llm"
	"adresponse-backend/internal/shared/metrics"
	"adresponse-backend/internal/shared/telemetry"
)

// Import defaults applied when the wizard leaves fields blank, matching the
// extraction stub for the primary demo email.
const (
	defaultImportName       = "Q3 Digital Media Campaign"
	defaultImportAgency     = "MediaBuyers Agency"
	defaultImportAdvertiser = "TechGadgets Inc."
	defaultImportCampaign   = "Digital Media"
	defaultImportBudget     = "$500K - $750K"
	defaultImportDueDate    = "2025-04-15"
)

// Service contains business logic for RFPs.
type Service struct {
	Repo Repo
	// LLM is optional; when nil (or on failure) the built-in generator runs.
	LLM llm.Client
}

// List returns a filtered page of RFPs with paging metadata.
func (s *Service) List(ctx context.Context, filter ListFilter) (ListResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = 10
	}

	items, total, err := s.Repo.List(ctx, filter)
	if err != nil {
		return ListResult{}, err
	}
	return ListResult{
		RFPs:        items,
		Total:       total,
		Pages:       (total + filter.PerPage - 1) / filter.PerPage,
		CurrentPage: filter.Page,
	}, nil
}

// Get returns an RFP by ID.
func (s *Service) Get(ctx context.Context, id string) (RFP, error) {
	if id == "" {
		return RFP{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// Create validates and stores a new RFP.
func (s *Service) Create(ctx context.Context, in CreateInput) (RFP, error) {
	if err := requireFields(map[string]string{
		"name":          in.Name,
		"agency_name":   in.AgencyName,
		"campaign_type": in.CampaignType,
		"budget_range":  in.BudgetRange,
	}); err != nil {
		return RFP{}, err
	}
	if _, err := time.Parse(DateFormat, in.DueDate); err != nil {
		return RFP{}, fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidInput)
	}

	status := in.Status
	if status == "" {
		status = StatusNew
	}
	now := time.Now().UTC()
	rfp := RFP{
		ID:                   uuid.NewString(),
		Name:                 in.Name,
		AgencyName:           in.AgencyName,
		AdvertiserClientName: in.AdvertiserClientName,
		CampaignType:         in.CampaignType,
		BudgetRange:          in.BudgetRange,
		DueDate:              in.DueDate,
		Status:               status,
		Content:              in.Content,
		AIProcessingEnabled:  boolOrDefault(in.AIProcessingEnabled, true),
		TeamMembers:          membersOrEmpty(in.TeamMembers),
		Attachments:          []Attachment{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.Repo.Create(ctx, rfp); err != nil {
		return RFP{}, err
	}
	return rfp, nil
}

// Update applies a partial update to an RFP.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (RFP, error) {
	rfp, err := s.Get(ctx, id)
	if err != nil {
		return RFP{}, err
	}

	if in.Name != nil {
		rfp.Name = *in.Name
	}
	if in.AgencyName != nil {
		rfp.AgencyName = *in.AgencyName
	}
	if in.AdvertiserClientName != nil {
		rfp.AdvertiserClientName = *in.AdvertiserClientName
	}
	if in.CampaignType != nil {
		rfp.CampaignType = *in.CampaignType
	}
	if in.BudgetRange != nil {
		rfp.BudgetRange = *in.BudgetRange
	}
	if in.DueDate != nil {
		if _, err := time.Parse(DateFormat, *in.DueDate); err != nil {
			return RFP{}, fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidInput)
		}
		rfp.DueDate = *in.DueDate
	}
	if in.Status != nil {
		rfp.Status = *in.Status
	}
	if in.CompletionPercentage != nil {
		pct := *in.CompletionPercentage
		if pct < 0 || pct > 100 {
			return RFP{}, fmt.Errorf("%w: completion_percentage must be 0-100", ErrInvalidInput)
		}
		rfp.CompletionPercentage = pct
	}
	if in.Content != nil {
		rfp.Content = *in.Content
	}
	if in.TeamMembers != nil {
		rfp.TeamMembers = membersOrEmpty(*in.TeamMembers)
	}

	rfp.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rfp); err != nil {
		return RFP{}, err
	}
	return rfp, nil
}

// Delete removes an RFP.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

// Import creates an RFP from the import wizard payload. Only the email
// method is supported; upload and url imports are rejected.
func (s *Service) Import(ctx context.Context, in ImportInput) (RFP, error) {
	method := strings.ToLower(strings.TrimSpace(in.ImportMethod))
	if method == "" {
		method = "email"
	}
	if method != "email" {
		return RFP{}, ErrUnsupportedImportMethod
	}

	return s.Create(ctx, CreateInput{
		Name:                 stringOrDefault(in.RFPName, defaultImportName),
		AgencyName:           stringOrDefault(in.AgencyName, defaultImportAgency),
		AdvertiserClientName: stringOrDefault(in.AdvertiserClientName, defaultImportAdvertiser),
		CampaignType:         stringOrDefault(in.CampaignType, defaultImportCampaign),
		BudgetRange:          stringOrDefault(in.BudgetRange, defaultImportBudget),
		DueDate:              stringOrDefault(in.DueDate, defaultImportDueDate),
		Status:               StatusNew,
		AIProcessingEnabled:  in.AIProcessingEnabled,
		TeamMembers:          in.TeamMembers,
	})
}

// SeedSampleData replaces all RFPs with the demo fixture set and returns
// how many records were created.
func (s *Service) SeedSampleData(ctx context.Context) (int, error) {
	samples := sampleRFPs(time.Now().UTC())
	if err := s.Repo.ReplaceAll(ctx, samples); err != nil {
		return 0, err
	}
	return len(samples), nil
}

// Analyze runs the AI analysis and attaches the result to the RFP.
func (s *Service) Analyze(ctx context.Context, id string) (analysis Analysis, err error) {
	metrics.IncAIActionStarted()
	defer finishAIAction(time.Now(), &err)

	rfp, err := s.Get(ctx, id)
	if err != nil {
		return Analysis{}, err
	}

	analysis = s.buildAnalysis(ctx, rfp)
	rfp.Analysis = &analysis
	rfp.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rfp); err != nil {
		return Analysis{}, err
	}
	return analysis, nil
}

// GenerateProposal generates a proposal and attaches it to the RFP,
// overwriting any previous proposal.
func (s *Service) GenerateProposal(ctx context.Context, id string) (proposal Proposal, err error) {
	metrics.IncAIActionStarted()
	defer finishAIAction(time.Now(), &err)

	rfp, err := s.Get(ctx, id)
	if err != nil {
		return Proposal{}, err
	}

	proposal = s.buildProposal(ctx, rfp)
	rfp.Proposal = &proposal
	rfp.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rfp); err != nil {
		return Proposal{}, err
	}
	return proposal, nil
}

// QualityCheck scores the RFP's proposal. A proposal must exist first.
func (s *Service) QualityCheck(ctx context.Context, id string) (check QualityCheck, err error) {
	metrics.IncAIActionStarted()
	defer finishAIAction(time.Now(), &err)

	rfp, err := s.Get(ctx, id)
	if err != nil {
		return QualityCheck{}, err
	}
	if rfp.Proposal == nil {
		return QualityCheck{}, ErrProposalRequired
	}

	check = generateQualityCheck(rfp)
	rfp.QualityCheck = &check
	rfp.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, rfp); err != nil {
		return QualityCheck{}, err
	}
	return check, nil
}

// ExtractPlacements returns the media placements found in the RFP content.
func (s *Service) ExtractPlacements(ctx context.Context, id string) (placements []Placement, err error) {
	metrics.IncAIActionStarted()
	defer finishAIAction(time.Now(), &err)

	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	return extractedPlacements(), nil
}

// finishAIAction closes out the metrics opened by each AI action. The
// duration is observed for failures too, so slow failures stay visible.
func finishAIAction(started time.Time, err *error) {
	metrics.ObserveAIActionDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	if *err != nil {
		metrics.IncAIActionFailed()
		return
	}
	metrics.IncAIActionCompleted()
}

func (s *Service) buildAnalysis(ctx context.Context, rfp RFP) Analysis {
	if s.LLM == nil || !rfp.AIProcessingEnabled {
		return generateAnalysis(rfp)
	}

	raw, err := s.LLM.Complete(ctx, llm.AnalysisPrompt(summaryOf(rfp)))
	if err != nil {
		telemetry.Error("rfp.analysis.llm_failed", map[string]any{"rfp_id": rfp.ID, "error": err.Error()})
		return generateAnalysis(rfp)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil ||
		analysis.ConfidenceScore < 0 || analysis.ConfidenceScore > 1 || len(analysis.KeyInsights) == 0 {
		telemetry.Error("rfp.analysis.llm_unparseable", map[string]any{"rfp_id": rfp.ID})
		return generateAnalysis(rfp)
	}
	return analysis
}

func (s *Service) buildProposal(ctx context.Context, rfp RFP) Proposal {
	now := time.Now().UTC()
	if s.LLM == nil || !rfp.AIProcessingEnabled {
		return generateProposal(rfp, now)
	}

	raw, err := s.LLM.Complete(ctx, llm.ProposalPrompt(summaryOf(rfp)))
	if err != nil {
		telemetry.Error("rfp.proposal.llm_failed", map[string]any{"rfp_id": rfp.ID, "error": err.Error()})
		return generateProposal(rfp, now)
	}

	var proposal Proposal
	if err := json.Unmarshal([]byte(raw), &proposal); err != nil || len(proposal.Sections) == 0 {
		telemetry.Error("rfp.proposal.llm_unparseable", map[string]any{"rfp_id": rfp.ID})
		return generateProposal(rfp, now)
	}
	proposal.GeneratedAt = now
	if proposal.NextSteps == nil {
		proposal.NextSteps = []string{}
	}
	return proposal
}

func summaryOf(rfp RFP) llm.RFPSummary {
	return llm.RFPSummary{
		Name:         rfp.Name,
		Agency:       rfp.AgencyName,
		Advertiser:   rfp.AdvertiserClientName,
		CampaignType: rfp.CampaignType,
		BudgetRange:  rfp.BudgetRange,
		DueDate:      rfp.DueDate,
		Content:      rfp.Content,
	}
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
		}
	}
	return nil
}

func stringOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func membersOrEmpty(members []TeamMember) []TeamMember {
	if members == nil {
		return []TeamMember{}
	}
	return members
}
