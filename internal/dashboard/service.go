package dashboard

import (
	"context"
	"strconv"
	"strings"
	"time"

	"adresponse-backend/internal/rfps"
)

// Mock rates pending real campaign telemetry.
const (
	aiResponseRate = 78
	winRate        = 32
)

const recentLimit = 4

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

// Service computes dashboard aggregates over the RFP collection.
type Service struct {
	RFPs rfps.Repo
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// Snapshot returns the current stats plus the most recently updated RFPs.
func (s *Service) Snapshot(ctx context.Context) (Stats, []rfps.RFP, error) {
	all, err := s.RFPs.ListAll(ctx)
	if err != nil {
		return Stats{}, nil, err
	}
	recent, err := s.RFPs.ListRecent(ctx, recentLimit)
	if err != nil {
		return Stats{}, nil, err
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	return computeStats(all, now), recent, nil
}

func computeStats(all []rfps.RFP, now time.Time) Stats {
	stats := Stats{
		AIResponseRate: aiResponseRate,
		WinRate:        winRate,
	}

	weekStart := now.Truncate(24 * time.Hour)
	weekEnd := weekStart.AddDate(0, 0, 7)

	completed := 0
	totalHighBudget := 0.0
	for _, rfp := range all {
		switch rfp.Status {
		case rfps.StatusNew, rfps.StatusInProgress, rfps.StatusUnderReview:
			stats.ActiveRFPs++
		case rfps.StatusCompleted:
			completed++
		}

		if low, high, ok := parseBudgetRange(rfp.BudgetRange); ok {
			stats.PendingPlacements += int(low / 10000)
			totalHighBudget += high
		}

		if due, err := time.Parse(rfps.DateFormat, rfp.DueDate); err == nil {
			if !due.Before(weekStart) && !due.After(weekEnd) {
				stats.DueThisWeek++
			}
		}
	}

	if len(all) > 0 {
		stats.CompletionRate = completed * 100 / len(all)
	}
	stats.PotentialRevenue = totalHighBudget / 1_000_000
	return stats
}

// parseBudgetRange splits "$500K - $750K" into dollar amounts. Values carry
// a K or M suffix and may be fractional, as in "$1.5M".
func parseBudgetRange(raw string) (low, high float64, ok bool) {
	parts := strings.Split(raw, " - ")
	if len(parts) != 2 {
		return 0, 0, false
	}
	low, okLow := parseBudget(parts[0])
	high, okHigh := parseBudget(parts[1])
	return low, high, okLow && okHigh
}

func parseBudget(raw string) (float64, bool) {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "$"))
	multiplier := 1.0
	switch {
	case strings.HasSuffix(v, "M"):
		multiplier = 1_000_000
		v = strings.TrimSuffix(v, "M")
	case strings.HasSuffix(v, "K"):
		multiplier = 1_000
		v = strings.TrimSuffix(v, "K")
	}
	v = strings.ReplaceAll(v, ",", "")
	amount, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return amount * multiplier, true
}
