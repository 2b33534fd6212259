package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newImportServer(t *testing.T, captured *ImportRFPInput, count *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost || req.URL.Path != "/api/rfps/import" {
			t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
		}
		*count++
		if err := json.NewDecoder(req.Body).Decode(captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"rfp":     RFP{ID: "rfp-1", Name: captured.RFPName, Status: StatusNew},
			"message": "RFP imported successfully",
		})
	}))
}

func TestSubmitBlockedBeforeEmailSelection(t *testing.T) {
	var captured ImportRFPInput
	count := 0
	srv := newImportServer(t, &captured, &count)
	defer srv.Close()

	form := NewImportForm(New(srv.URL))
	if form.CanSubmit() {
		t.Fatalf("expected CanSubmit false before email selection")
	}

	if _, err := form.Submit(context.Background()); !errors.Is(err, ErrNoEmailSelected) {
		t.Fatalf("expected ErrNoEmailSelected, got %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no request, got %d", count)
	}
}

func TestSelectEmailAutoPopulatesKnownSender(t *testing.T) {
	form := NewImportForm(nil)

	form.SelectEmail(Email{ID: "1", Sender: "MediaBuyers Agency"})
	fields := form.Fields()
	if fields.RFPName != "Q3 Digital Media Campaign" {
		t.Fatalf("expected auto-populated name, got %q", fields.RFPName)
	}
	if fields.BudgetRange != "$500K - $750K" {
		t.Fatalf("expected auto-populated budget, got %q", fields.BudgetRange)
	}
	if fields.AdvertiserClientName != "TechGadgets Inc." {
		t.Fatalf("expected auto-populated advertiser, got %q", fields.AdvertiserClientName)
	}
	if !form.CanSubmit() {
		t.Fatalf("expected CanSubmit true after selection")
	}

	form.SelectEmail(Email{ID: "2", Sender: "BrandMax Advertising"})
	fields = form.Fields()
	if fields.RFPName != "Summer Retail Promotion" {
		t.Fatalf("expected BrandMax name, got %q", fields.RFPName)
	}
	if fields.DueDate != "2025-04-10" {
		t.Fatalf("expected BrandMax due date, got %q", fields.DueDate)
	}
}

func TestSelectEmailUnknownSenderLeavesFieldsBlank(t *testing.T) {
	form := NewImportForm(nil)

	form.SelectEmail(Email{ID: "3", Sender: "DigitalFirst Agency"})
	if form.Fields() != (ImportFields{}) {
		t.Fatalf("expected blank fields for unknown sender, got %+v", form.Fields())
	}
	if !form.CanSubmit() {
		t.Fatalf("expected CanSubmit true once an email is selected")
	}
}

func TestFieldsEditableAfterAutoPopulation(t *testing.T) {
	form := NewImportForm(nil)
	form.SelectEmail(Email{ID: "1", Sender: "MediaBuyers Agency"})

	fields := form.Fields()
	fields.RFPName = "Renamed Campaign"
	form.SetFields(fields)

	if form.Fields().RFPName != "Renamed Campaign" {
		t.Fatalf("expected edited name kept, got %q", form.Fields().RFPName)
	}
	if form.Fields().BudgetRange != "$500K - $750K" {
		t.Fatalf("expected other fields kept, got %q", form.Fields().BudgetRange)
	}
}

func TestSubmitSendsPayloadAndResets(t *testing.T) {
	var captured ImportRFPInput
	count := 0
	srv := newImportServer(t, &captured, &count)
	defer srv.Close()

	form := NewImportForm(New(srv.URL))
	form.SelectEmail(Email{ID: "1", Sender: "MediaBuyers Agency"})
	form.SetTeamMembers([]TeamMember{{Name: "John Doe", Role: "Media Director"}})

	rfp, err := form.Submit(context.Background())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 request, got %d", count)
	}
	if rfp.ID == "" {
		t.Fatalf("expected created RFP returned")
	}

	if captured.ImportMethod != ImportMethodEmail {
		t.Fatalf("expected email method, got %q", captured.ImportMethod)
	}
	if captured.EmailID != "1" {
		t.Fatalf("expected email id 1, got %q", captured.EmailID)
	}
	if captured.RFPName != "Q3 Digital Media Campaign" {
		t.Fatalf("expected auto-populated name sent, got %q", captured.RFPName)
	}
	if len(captured.TeamMembers) != 1 {
		t.Fatalf("expected team members sent, got %v", captured.TeamMembers)
	}

	if form.SelectedEmail() != nil {
		t.Fatalf("expected email selection reset")
	}
	if form.Fields() != (ImportFields{}) {
		t.Fatalf("expected fields reset, got %+v", form.Fields())
	}
	if form.CanSubmit() {
		t.Fatalf("expected CanSubmit false after reset")
	}
}

func TestSubmitFailureKeepsState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "Import method not supported"})
	}))
	defer srv.Close()

	form := NewImportForm(New(srv.URL))
	form.SelectEmail(Email{ID: "1", Sender: "MediaBuyers Agency"})

	if _, err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if form.SelectedEmail() == nil {
		t.Fatalf("expected selection kept on failure")
	}
	if form.Fields().RFPName == "" {
		t.Fatalf("expected fields kept on failure")
	}
}
