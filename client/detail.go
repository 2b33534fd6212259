package client

import (
	"context"
	"errors"
	"sync"
)

// Detail view tabs.
const (
	TabOverview = "overview"
	TabAnalysis = "analysis"
	TabProposal = "proposal"
	TabQuality  = "quality"
)

var (
	// ErrActionInFlight signals the same action is already running.
	ErrActionInFlight = errors.New("action already in flight")
	// ErrNoProposal signals a quality check attempted before a proposal exists.
	ErrNoProposal = errors.New("generate a proposal before running a quality check")
	// ErrNotLoaded signals an action attempted before Load succeeded.
	ErrNotLoaded = errors.New("no RFP loaded")
)

// DetailView tracks a single RFP's detail screen: the loaded record, the
// active tab and the in-flight flags for the three AI actions. A successful
// action merges its result into the local record and switches the tab; a
// failure leaves the record untouched.
type DetailView struct {
	client *Client

	mu         sync.Mutex
	rfp        *RFP
	activeTab  string
	analyzing  bool
	generating bool
	checking   bool
}

// NewDetailView constructs a DetailView over the given client.
func NewDetailView(c *Client) *DetailView {
	return &DetailView{client: c, activeTab: TabOverview}
}

// Load fetches the RFP and resets the view to the overview tab.
func (v *DetailView) Load(ctx context.Context, id string) error {
	rfp, err := v.client.GetRFP(ctx, id)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.rfp = &rfp
	v.activeTab = TabOverview
	v.mu.Unlock()
	return nil
}

// RFP returns a copy of the loaded record, or nil before Load.
func (v *DetailView) RFP() *RFP {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rfp == nil {
		return nil
	}
	out := *v.rfp
	return &out
}

// ActiveTab returns the currently selected tab.
func (v *DetailView) ActiveTab() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.activeTab
}

// SetActiveTab selects a tab directly.
func (v *DetailView) SetActiveTab(tab string) {
	v.mu.Lock()
	v.activeTab = tab
	v.mu.Unlock()
}

// Analyze runs the AI analysis and switches to the analysis tab on success.
func (v *DetailView) Analyze(ctx context.Context) error {
	id, err := v.begin(&v.analyzing)
	if err != nil {
		return err
	}
	defer v.end(&v.analyzing)

	analysis, err := v.client.AnalyzeRFP(ctx, id)
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.rfp != nil && v.rfp.ID == id {
		v.rfp.Analysis = &analysis
		v.activeTab = TabAnalysis
	}
	v.mu.Unlock()
	return nil
}

// GenerateProposal generates a proposal and switches to the proposal tab
// on success.
func (v *DetailView) GenerateProposal(ctx context.Context) error {
	id, err := v.begin(&v.generating)
	if err != nil {
		return err
	}
	defer v.end(&v.generating)

	proposal, err := v.client.GenerateProposal(ctx, id)
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.rfp != nil && v.rfp.ID == id {
		v.rfp.Proposal = &proposal
		v.activeTab = TabProposal
	}
	v.mu.Unlock()
	return nil
}

// QualityCheck scores the proposal and switches to the quality tab on
// success. Without a proposal in local state no request is issued.
func (v *DetailView) QualityCheck(ctx context.Context) error {
	v.mu.Lock()
	if v.rfp == nil {
		v.mu.Unlock()
		return ErrNotLoaded
	}
	if v.checking {
		v.mu.Unlock()
		return ErrActionInFlight
	}
	if v.rfp.Proposal == nil {
		v.mu.Unlock()
		return ErrNoProposal
	}
	id := v.rfp.ID
	v.checking = true
	v.mu.Unlock()
	defer v.end(&v.checking)

	check, err := v.client.QualityCheckRFP(ctx, id)
	if err != nil {
		return err
	}

	v.mu.Lock()
	if v.rfp != nil && v.rfp.ID == id {
		v.rfp.QualityCheck = &check
		v.activeTab = TabQuality
	}
	v.mu.Unlock()
	return nil
}

func (v *DetailView) begin(flag *bool) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.rfp == nil {
		return "", ErrNotLoaded
	}
	if *flag {
		return "", ErrActionInFlight
	}
	*flag = true
	return v.rfp.ID, nil
}

func (v *DetailView) end(flag *bool) {
	v.mu.Lock()
	*flag = false
	v.mu.Unlock()
}
