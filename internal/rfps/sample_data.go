package rfps

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Shared demo team roster. Fixtures pick subsets below.
var (
	memberJohn   = TeamMember{Name: "John Doe", Role: "Media Director"}
	memberAmanda = TeamMember{Name: "Amanda Smith", Role: "Digital Strategist"}
	memberRobert = TeamMember{Name: "Robert Johnson", Role: "Ad Operations"}
	memberMaria  = TeamMember{Name: "Maria Lopez", Role: "Sales Manager"}
)

type sampleDef struct {
	name         string
	agency       string
	advertiser   string
	campaignType string
	budgetRange  string
	dueDate      string
	status       string
	completion   int
	teamMembers  []TeamMember
	attachments  []Attachment
}

var sampleDefs = []sampleDef{
	{
		name:         "Q3 Digital Media Campaign",
		agency:       "MediaBuyers Agency",
		advertiser:   "TechGadgets Inc.",
		campaignType: "Digital Media",
		budgetRange:  "$500K - $750K",
		dueDate:      "2025-04-15",
		status:       StatusInProgress,
		completion:   72,
		teamMembers:  []TeamMember{memberJohn, memberAmanda},
		attachments: []Attachment{
			{Filename: "TechGadgets_Q3_Digital_RFP.pdf", Type: "Primary RFP", Size: "2.3 MB"},
			{Filename: "TechGadgets_Media_Requirements.xlsx", Type: "Supporting Doc", Size: "1.1 MB"},
		},
	},
	{
		name:         "Summer Retail Promotion",
		agency:       "BrandMax Advertising",
		advertiser:   "FashionRetail Co.",
		campaignType: "Multi-platform",
		budgetRange:  "$300K - $450K",
		dueDate:      "2025-04-10",
		status:       StatusInProgress,
		completion:   45,
		teamMembers:  []TeamMember{memberAmanda, memberMaria},
		attachments: []Attachment{
			{Filename: "FashionRetail_Summer_Campaign.pdf", Type: "Primary RFP", Size: "1.8 MB"},
		},
	},
	{
		name:         "Fall TV Sponsorship Package",
		agency:       "GlobalMedia Partners",
		advertiser:   "LuxuryCars Inc.",
		campaignType: "Broadcast & Digital",
		budgetRange:  "$1M - $1.5M",
		dueDate:      "2025-04-22",
		status:       StatusCompleted,
		completion:   100,
		teamMembers:  []TeamMember{memberJohn, memberRobert},
	},
	{
		name:         "Holiday Campaign Planning",
		agency:       "DigitalFirst Agency",
		advertiser:   "HomeGoods Plus",
		campaignType: "Digital & Social",
		budgetRange:  "$250K - $400K",
		dueDate:      "2025-04-12",
		status:       StatusUrgent,
		completion:   30,
		teamMembers:  []TeamMember{memberAmanda},
	},
	{
		name:         "B2B Tech Solutions Campaign",
		agency:       "AdVantage Media",
		advertiser:   "EnterpriseCloud Solutions",
		campaignType: "B2B Digital",
		budgetRange:  "$150K - $200K",
		dueDate:      "2025-04-28",
		status:       StatusNew,
		completion:   5,
		teamMembers:  []TeamMember{memberRobert},
	},
	{
		name:         "Financial Services Awareness",
		agency:       "MediaPlan Group",
		advertiser:   "TrustBank Financial",
		campaignType: "Multi-channel",
		budgetRange:  "$400K - $600K",
		dueDate:      "2025-04-18",
		status:       StatusInProgress,
		completion:   60,
		teamMembers:  []TeamMember{memberJohn, memberMaria},
	},
	{
		name:         "Mobile App Launch Campaign",
		agency:       "CreativeEdge Partners",
		advertiser:   "FitLife App",
		campaignType: "Mobile & Social",
		budgetRange:  "$200K - $350K",
		dueDate:      "2025-05-05",
		status:       StatusNotStarted,
		completion:   0,
		teamMembers:  []TeamMember{memberAmanda, memberRobert},
	},
	{
		name:         "CPG Brand Relaunch",
		agency:       "StrategyPlus Media",
		advertiser:   "EcoClean Products",
		campaignType: "Integrated Media",
		budgetRange:  "$350K - $500K",
		dueDate:      "2025-04-25",
		status:       StatusInProgress,
		completion:   25,
		teamMembers:  []TeamMember{memberMaria},
	},
}

// sampleRFPs builds the demo fixture set. Timestamps are staggered so the
// list order (updated_at desc) matches the declaration order above.
func sampleRFPs(now time.Time) []RFP {
	rfps := make([]RFP, 0, len(sampleDefs))
	for i, def := range sampleDefs {
		members := def.teamMembers
		if members == nil {
			members = []TeamMember{}
		}
		attachments := def.attachments
		if attachments == nil {
			attachments = []Attachment{}
		}
		ts := now.Add(-time.Duration(i) * time.Minute)
		rfps = append(rfps, RFP{
			ID:                   uuid.NewString(),
			Name:                 def.name,
			AgencyName:           def.agency,
			AdvertiserClientName: def.advertiser,
			CampaignType:         def.campaignType,
			BudgetRange:          def.budgetRange,
			DueDate:              def.dueDate,
			Status:               def.status,
			CompletionPercentage: def.completion,
			Content: fmt.Sprintf("RFP for %s campaign targeting %s channels with budget range %s.",
				def.name, def.campaignType, def.budgetRange),
			AIProcessingEnabled: true,
			TeamMembers:         members,
			Attachments:         attachments,
			CreatedAt:           ts,
			UpdatedAt:           ts,
		})
	}
	return rfps
}
