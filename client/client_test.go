package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoDecodesSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/api/dashboard/stats" {
			t.Fatalf("unexpected path %s", req.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"stats":       Stats{ActiveRFPs: 5, WinRate: 32},
			"recent_rfps": []RFP{{ID: "rfp-1"}},
		})
	}))
	defer srv.Close()

	snapshot, err := New(srv.URL).GetDashboard(context.Background())
	if err != nil {
		t.Fatalf("get dashboard: %v", err)
	}
	if snapshot.Stats.ActiveRFPs != 5 || snapshot.Stats.WinRate != 32 {
		t.Fatalf("unexpected stats: %+v", snapshot.Stats)
	}
	if len(snapshot.RecentRFPs) != 1 {
		t.Fatalf("expected 1 recent RFP, got %d", len(snapshot.RecentRFPs))
	}
}

func TestDoReturnsAPIErrorWithServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "a proposal must be generated before running a quality check",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).QualityCheckRFP(context.Background(), "rfp-1")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.Status)
	}
	if apiErr.Message != "a proposal must be generated before running a quality check" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestDoFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteRFP(context.Background(), "rfp-1")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
}

func TestChatSendsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var in map[string]string
		if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if in["message"] != "What should I work on?" {
			t.Fatalf("unexpected message: %q", in["message"])
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "reply": "Start with the urgent RFP."})
	}))
	defer srv.Close()

	reply, err := New(srv.URL).Chat(context.Background(), "What should I work on?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != "Start with the urgent RFP." {
		t.Fatalf("unexpected reply: %q", reply)
	}
}
