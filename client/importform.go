package client

import (
	"context"
	"errors"
	"sync"
)

// Import methods offered by the wizard. Only email import is implemented
// end to end; the server rejects the others.
const (
	ImportMethodEmail  = "email"
	ImportMethodUpload = "upload"
	ImportMethodURL    = "url"
)

// ErrNoEmailSelected signals Submit was called before an email was picked.
var ErrNoEmailSelected = errors.New("select an email before submitting")

// ImportFields are the editable RFP fields on the wizard's review step.
type ImportFields struct {
	RFPName              string
	AgencyName           string
	AdvertiserClientName string
	CampaignType         string
	BudgetRange          string
	DueDate              string
}

// senderDefaults maps known senders to extracted RFP fields. Unknown
// senders leave the fields blank for manual entry.
var senderDefaults = map[string]ImportFields{
	"MediaBuyers Agency": {
		RFPName:              "Q3 Digital Media Campaign",
		AgencyName:           "MediaBuyers Agency",
		AdvertiserClientName: "TechGadgets Inc.",
		CampaignType:         "Digital Media",
		BudgetRange:          "$500K - $750K",
		DueDate:              "2025-04-15",
	},
	"BrandMax Advertising": {
		RFPName:              "Summer Retail Promotion",
		AgencyName:           "BrandMax Advertising",
		AdvertiserClientName: "FashionRetail Co.",
		CampaignType:         "Multi-platform",
		BudgetRange:          "$300K - $450K",
		DueDate:              "2025-04-10",
	},
}

// ImportForm tracks the import wizard: method choice, selected email,
// editable fields and processing options. Selecting an email auto-populates
// the fields from the sender table; a successful submit resets everything.
type ImportForm struct {
	client *Client

	mu           sync.Mutex
	method       string
	email        *Email
	fields       ImportFields
	aiProcessing bool
	teamMembers  []TeamMember
}

// NewImportForm constructs an ImportForm over the given client.
func NewImportForm(c *Client) *ImportForm {
	return &ImportForm{
		client:       c,
		method:       ImportMethodEmail,
		aiProcessing: true,
	}
}

// SetMethod selects the import method.
func (f *ImportForm) SetMethod(method string) {
	f.mu.Lock()
	f.method = method
	f.mu.Unlock()
}

// Method returns the selected import method.
func (f *ImportForm) Method() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method
}

// SelectEmail picks an email and auto-populates the fields from the sender
// table. Unknown senders clear the fields for manual entry.
func (f *ImportForm) SelectEmail(email Email) {
	f.mu.Lock()
	f.email = &email
	f.fields = senderDefaults[email.Sender]
	f.mu.Unlock()
}

// SelectedEmail returns the picked email, or nil.
func (f *ImportForm) SelectedEmail() *Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.email == nil {
		return nil
	}
	out := *f.email
	return &out
}

// Fields returns the current field values.
func (f *ImportForm) Fields() ImportFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields overwrites the field values; they stay editable after
// auto-population.
func (f *ImportForm) SetFields(fields ImportFields) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

// SetAIProcessing toggles AI processing for the imported RFP.
func (f *ImportForm) SetAIProcessing(enabled bool) {
	f.mu.Lock()
	f.aiProcessing = enabled
	f.mu.Unlock()
}

// SetTeamMembers assigns the team for the imported RFP.
func (f *ImportForm) SetTeamMembers(members []TeamMember) {
	f.mu.Lock()
	f.teamMembers = members
	f.mu.Unlock()
}

// CanSubmit reports whether the form is ready: email import with an email
// selected.
func (f *ImportForm) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.method == ImportMethodEmail && f.email != nil
}

// Submit imports the RFP. On success all form state resets to its initial
// values.
func (f *ImportForm) Submit(ctx context.Context) (RFP, error) {
	f.mu.Lock()
	if f.method != ImportMethodEmail || f.email == nil {
		f.mu.Unlock()
		return RFP{}, ErrNoEmailSelected
	}
	aiProcessing := f.aiProcessing
	in := ImportRFPInput{
		ImportMethod:         f.method,
		EmailID:              f.email.ID,
		RFPName:              f.fields.RFPName,
		AgencyName:           f.fields.AgencyName,
		AdvertiserClientName: f.fields.AdvertiserClientName,
		CampaignType:         f.fields.CampaignType,
		BudgetRange:          f.fields.BudgetRange,
		DueDate:              f.fields.DueDate,
		AIProcessingEnabled:  &aiProcessing,
		TeamMembers:          f.teamMembers,
	}
	f.mu.Unlock()

	rfp, err := f.client.ImportRFP(ctx, in)
	if err != nil {
		return RFP{}, err
	}

	f.mu.Lock()
	f.method = ImportMethodEmail
	f.email = nil
	f.fields = ImportFields{}
	f.aiProcessing = true
	f.teamMembers = nil
	f.mu.Unlock()
	return rfp, nil
}
