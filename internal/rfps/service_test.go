package rfps

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"adresponse-backend/internal/shared/metrics"
)

func newTestService() *Service {
	return &Service{Repo: NewMemoryRepo()}
}

func seedSamples(t *testing.T, svc *Service) int {
	t.Helper()
	count, err := svc.SeedSampleData(context.Background())
	if err != nil {
		t.Fatalf("seed sample data: %v", err)
	}
	return count
}

func TestSeedSampleDataReplacesCollection(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateInput{
		Name:         "Existing",
		AgencyName:   "Agency",
		CampaignType: "Digital",
		BudgetRange:  "$10K - $20K",
		DueDate:      "2025-06-01",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	count := seedSamples(t, svc)
	if count != 8 {
		t.Fatalf("expected 8 sample RFPs, got %d", count)
	}

	all, err := svc.Repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 8 {
		t.Fatalf("expected collection replaced with 8 RFPs, got %d", len(all))
	}
	for _, rfp := range all {
		if rfp.Name == "Existing" {
			t.Fatalf("expected pre-existing RFP to be removed")
		}
	}
}

func TestListPagination(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	result, err := svc.List(ctx, ListFilter{Page: 1, PerPage: 5})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 8 {
		t.Fatalf("expected total 8, got %d", result.Total)
	}
	if result.Pages != 2 {
		t.Fatalf("expected 2 pages, got %d", result.Pages)
	}
	if len(result.RFPs) != 5 {
		t.Fatalf("expected 5 rows on page 1, got %d", len(result.RFPs))
	}

	page2, err := svc.List(ctx, ListFilter{Page: 2, PerPage: 5})
	if err != nil {
		t.Fatalf("list page 2: %v", err)
	}
	if len(page2.RFPs) != 3 {
		t.Fatalf("expected 3 rows on page 2, got %d", len(page2.RFPs))
	}
	if page2.CurrentPage != 2 {
		t.Fatalf("expected current_page 2, got %d", page2.CurrentPage)
	}
}

func TestListSearchAndStatusFilter(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	result, err := svc.List(ctx, ListFilter{Search: "mediabuyers"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 1 {
		t.Fatalf("expected 1 match for search, got %d", result.Total)
	}
	if result.RFPs[0].AgencyName != "MediaBuyers Agency" {
		t.Fatalf("unexpected match: %s", result.RFPs[0].AgencyName)
	}

	completed, err := svc.List(ctx, ListFilter{Status: StatusCompleted})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if completed.Total != 1 {
		t.Fatalf("expected 1 completed RFP, got %d", completed.Total)
	}

	all, err := svc.List(ctx, ListFilter{Status: StatusAll})
	if err != nil {
		t.Fatalf("list all status: %v", err)
	}
	if all.Total != 8 {
		t.Fatalf("expected All Status to match everything, got %d", all.Total)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{
		AgencyName:   "Agency",
		CampaignType: "Digital",
		BudgetRange:  "$10K - $20K",
		DueDate:      "2025-06-01",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing name, got %v", err)
	}

	_, err = svc.Create(ctx, CreateInput{
		Name:         "Campaign",
		AgencyName:   "Agency",
		CampaignType: "Digital",
		BudgetRange:  "$10K - $20K",
		DueDate:      "June 1",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad due date, got %v", err)
	}
}

func TestCreateDefaults(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rfp, err := svc.Create(ctx, CreateInput{
		Name:         "Campaign",
		AgencyName:   "Agency",
		CampaignType: "Digital",
		BudgetRange:  "$10K - $20K",
		DueDate:      "2025-06-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rfp.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rfp.Status != StatusNew {
		t.Fatalf("expected default status New, got %q", rfp.Status)
	}
	if !rfp.AIProcessingEnabled {
		t.Fatalf("expected AI processing enabled by default")
	}
	if rfp.TeamMembers == nil || rfp.Attachments == nil {
		t.Fatalf("expected empty slices, not nil")
	}
}

func TestUpdatePartial(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rfp, err := svc.Create(ctx, CreateInput{
		Name:         "Campaign",
		AgencyName:   "Agency",
		CampaignType: "Digital",
		BudgetRange:  "$10K - $20K",
		DueDate:      "2025-06-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := StatusInProgress
	pct := 40
	updated, err := svc.Update(ctx, rfp.ID, UpdateInput{Status: &status, CompletionPercentage: &pct})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusInProgress || updated.CompletionPercentage != 40 {
		t.Fatalf("expected status/completion updated, got %q/%d", updated.Status, updated.CompletionPercentage)
	}
	if updated.Name != "Campaign" {
		t.Fatalf("expected untouched fields preserved, got name %q", updated.Name)
	}
	if updated.UpdatedAt.Before(rfp.UpdatedAt) {
		t.Fatalf("expected updated_at to advance")
	}

	bad := 150
	if _, err := svc.Update(ctx, rfp.ID, UpdateInput{CompletionPercentage: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for completion 150, got %v", err)
	}
}

func TestImportDefaultsAndMethodGate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	rfp, err := svc.Import(ctx, ImportInput{ImportMethod: "email", EmailID: "1"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if rfp.Name != "Q3 Digital Media Campaign" {
		t.Fatalf("expected default name, got %q", rfp.Name)
	}
	if rfp.AgencyName != "MediaBuyers Agency" {
		t.Fatalf("expected default agency, got %q", rfp.AgencyName)
	}
	if rfp.BudgetRange != "$500K - $750K" {
		t.Fatalf("expected default budget, got %q", rfp.BudgetRange)
	}
	if rfp.Status != StatusNew {
		t.Fatalf("expected status New, got %q", rfp.Status)
	}

	override, err := svc.Import(ctx, ImportInput{
		ImportMethod: "email",
		RFPName:      "Custom Name",
	})
	if err != nil {
		t.Fatalf("import with override: %v", err)
	}
	if override.Name != "Custom Name" {
		t.Fatalf("expected provided name kept, got %q", override.Name)
	}

	if _, err := svc.Import(ctx, ImportInput{ImportMethod: "upload"}); !errors.Is(err, ErrUnsupportedImportMethod) {
		t.Fatalf("expected ErrUnsupportedImportMethod for upload, got %v", err)
	}
	if _, err := svc.Import(ctx, ImportInput{ImportMethod: "url"}); !errors.Is(err, ErrUnsupportedImportMethod) {
		t.Fatalf("expected ErrUnsupportedImportMethod for url, got %v", err)
	}
}

func TestAnalyzePersistsResult(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	id := all[0].ID

	analysis, err := svc.Analyze(ctx, id)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if analysis.ConfidenceScore < 0.80 || analysis.ConfidenceScore > 0.95 {
		t.Fatalf("confidence score out of range: %f", analysis.ConfidenceScore)
	}
	if len(analysis.KeyInsights) == 0 {
		t.Fatalf("expected key insights")
	}

	stored, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Analysis == nil {
		t.Fatalf("expected analysis persisted on RFP")
	}

	again, err := svc.Analyze(ctx, id)
	if err != nil {
		t.Fatalf("re-analyze: %v", err)
	}
	if again.ConfidenceScore != analysis.ConfidenceScore {
		t.Fatalf("expected deterministic analysis per RFP")
	}
}

func TestQualityCheckRequiresProposal(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	id := all[0].ID

	if _, err := svc.QualityCheck(ctx, id); !errors.Is(err, ErrProposalRequired) {
		t.Fatalf("expected ErrProposalRequired, got %v", err)
	}

	proposal, err := svc.GenerateProposal(ctx, id)
	if err != nil {
		t.Fatalf("generate proposal: %v", err)
	}
	if len(proposal.Sections) == 0 {
		t.Fatalf("expected proposal sections")
	}
	if !strings.Contains(proposal.Sections["executive_summary"], all[0].Name) {
		t.Fatalf("expected executive summary to reference RFP name")
	}

	check, err := svc.QualityCheck(ctx, id)
	if err != nil {
		t.Fatalf("quality check: %v", err)
	}
	if len(check.ChecksPerformed) != 5 {
		t.Fatalf("expected 5 check categories, got %d", len(check.ChecksPerformed))
	}
	if check.OverallScore < 80 || check.OverallScore > 99 {
		t.Fatalf("overall score out of range: %d", check.OverallScore)
	}
	for _, item := range check.ChecksPerformed {
		if item.Status != QualityExcellent && item.Status != QualityGood && item.Status != QualityPoor {
			t.Fatalf("unexpected status %q", item.Status)
		}
	}

	stored, _ := svc.Get(ctx, id)
	if stored.QualityCheck == nil {
		t.Fatalf("expected quality check persisted on RFP")
	}
}

func TestExtractPlacements(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	placements, err := svc.ExtractPlacements(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("extract placements: %v", err)
	}
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placements))
	}

	if _, err := svc.ExtractPlacements(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing RFP, got %v", err)
	}
}

type stubLLM struct {
	response string
	err      error
	calls    int
}

func (s *stubLLM) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

func TestAnalyzeUsesLLMWhenParseable(t *testing.T) {
	llmStub := &stubLLM{response: `{
		"confidence_score": 0.91,
		"key_insights": ["insight"],
		"recommendations": ["rec"],
		"risk_factors": ["risk"],
		"success_metrics": ["metric"]
	}`}
	svc := &Service{Repo: NewMemoryRepo(), LLM: llmStub}
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	analysis, err := svc.Analyze(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if llmStub.calls != 1 {
		t.Fatalf("expected 1 LLM call, got %d", llmStub.calls)
	}
	if analysis.ConfidenceScore != 0.91 {
		t.Fatalf("expected LLM analysis used, got confidence %f", analysis.ConfidenceScore)
	}
}

func TestAnalyzeFallsBackOnLLMError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("provider down")}
	svc := &Service{Repo: NewMemoryRepo(), LLM: llmStub}
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	analysis, err := svc.Analyze(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(analysis.KeyInsights) == 0 {
		t.Fatalf("expected fallback analysis content")
	}
}

func aiActionCounter(t *testing.T, name string) uint64 {
	t.Helper()
	for _, line := range strings.Split(metrics.Render(), "\n") {
		if strings.HasPrefix(line, name+" ") {
			v, err := strconv.ParseUint(strings.TrimPrefix(line, name+" "), 10, 64)
			if err != nil {
				t.Fatalf("parse %s: %v", name, err)
			}
			return v
		}
	}
	t.Fatalf("counter %s not rendered", name)
	return 0
}

func TestAIActionsRecordMetrics(t *testing.T) {
	svc := newTestService()
	seedSamples(t, svc)
	ctx := context.Background()

	all, _ := svc.Repo.ListAll(ctx)
	id := all[0].ID

	started := aiActionCounter(t, "rfp_ai_action_started_total")
	completed := aiActionCounter(t, "rfp_ai_action_completed_total")
	failed := aiActionCounter(t, "rfp_ai_action_failed_total")

	if _, err := svc.Analyze(ctx, id); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if _, err := svc.Analyze(ctx, "missing"); err == nil {
		t.Fatalf("expected error for missing RFP")
	}

	if delta := aiActionCounter(t, "rfp_ai_action_started_total") - started; delta != 2 {
		t.Fatalf("expected 2 started, got %d", delta)
	}
	if delta := aiActionCounter(t, "rfp_ai_action_completed_total") - completed; delta != 1 {
		t.Fatalf("expected 1 completed, got %d", delta)
	}
	if delta := aiActionCounter(t, "rfp_ai_action_failed_total") - failed; delta != 1 {
		t.Fatalf("expected 1 failed, got %d", delta)
	}
}
