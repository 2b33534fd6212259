package emails

import "context"

// Repo provides access to inbound RFP emails.
type Repo interface {
	List(ctx context.Context) ([]Email, error)
}

// MemoryRepo serves the demo inbox. Inbound mail ingestion is out of scope,
// so the inbox content is fixed.
type MemoryRepo struct {
	emails []Email
}

// NewMemoryRepo constructs a MemoryRepo seeded with the demo inbox.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{emails: seedEmails()}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Email, error) {
	out := make([]Email, len(r.emails))
	copy(out, r.emails)
	return out, nil
}

func seedEmails() []Email {
	return []Email{
		{
			ID:      "1",
			Subject: "MediaBuyers Agency - Q3 Digital Campaign RFP (2 attachments)",
			Sender:  "MediaBuyers Agency",
			Attachments: []Attachment{
				{Filename: "TechGadgets_Q3_Digital_RFP.pdf", Type: "Primary RFP"},
				{Filename: "TechGadgets_Media_Requirements.xlsx", Type: "Supporting"},
			},
		},
		{
			ID:      "2",
			Subject: "BrandMax Advertising - Summer Retail Promotion RFP (1 attachment)",
			Sender:  "BrandMax Advertising",
			Attachments: []Attachment{
				{Filename: "Summer_Retail_RFP.pdf", Type: "Primary RFP"},
			},
		},
		{
			ID:      "3",
			Subject: "DigitalFirst Agency - Holiday Campaign Planning RFP (3 attachments)",
			Sender:  "DigitalFirst Agency",
			Attachments: []Attachment{
				{Filename: "Holiday_Campaign_RFP.pdf", Type: "Primary RFP"},
				{Filename: "Media_Requirements.xlsx", Type: "Supporting"},
				{Filename: "Brand_Guidelines.pdf", Type: "Supporting"},
			},
		},
		{
			ID:      "4",
			Subject: "AdVantage Media - B2B Tech Solutions Campaign RFP (1 attachment)",
			Sender:  "AdVantage Media",
			Attachments: []Attachment{
				{Filename: "B2B_Tech_RFP.pdf", Type: "Primary RFP"},
			},
		},
	}
}
