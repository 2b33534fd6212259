package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

type kbServer struct {
	mu       sync.Mutex
	requests []string
	articles []Article
}

func (s *kbServer) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, req.Method+" "+req.URL.Path)
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		switch {
		case req.Method == http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "articles": s.articles})
		case req.Method == http.MethodPost:
			var in ArticleInput
			if err := json.NewDecoder(req.Body).Decode(&in); err != nil {
				t.Fatalf("decode create: %v", err)
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"article": Article{ID: "new-1", Title: in.Title, Content: in.Content, Category: "Strategy"},
			})
		case req.Method == http.MethodDelete:
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Article deleted successfully"})
		default:
			t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
		}
	}
}

func (s *kbServer) countMatching(prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.requests {
		if strings.HasPrefix(r, prefix) {
			n++
		}
	}
	return n
}

func seedKBArticles() []Article {
	return []Article{
		{ID: "1", Title: "Digital Media Planning Best Practices", Category: "Strategy", Content: "Planning guide", Tags: []string{"Digital", "Planning"}},
		{ID: "2", Title: "Programmatic Advertising Fundamentals", Category: "Technology", Content: "RTB basics", Tags: []string{"Programmatic", "RTB"}},
		{ID: "3", Title: "Media Buying Strategies", Category: "Strategy", Content: "Buying guide", Tags: []string{"strategy"}},
	}
}

func newKnowledgeView(t *testing.T) (*KnowledgeView, *kbServer, func()) {
	t.Helper()
	state := &kbServer{articles: seedKBArticles()}
	srv := httptest.NewServer(state.handler(t))
	view := NewKnowledgeView(New(srv.URL))
	if err := view.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return view, state, srv.Close
}

func TestKnowledgeViewLoadsOnce(t *testing.T) {
	view, state, done := newKnowledgeView(t)
	defer done()

	if err := view.Load(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got := state.countMatching("GET"); got != 1 {
		t.Fatalf("expected 1 GET, got %d", got)
	}
	if len(view.Visible()) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(view.Visible()))
	}
}

func TestKnowledgeViewFiltersLocally(t *testing.T) {
	view, state, done := newKnowledgeView(t)
	defer done()

	view.SetCategory("Strategy")
	if got := view.Visible(); len(got) != 2 {
		t.Fatalf("expected 2 Strategy articles, got %d", len(got))
	}

	view.SetSearch("programmatic")
	view.SetCategory(CategoryAll)
	got := view.Visible()
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected the programmatic article, got %v", got)
	}

	view.SetSearch("rtb")
	if got := view.Visible(); len(got) != 1 {
		t.Fatalf("expected tag match, got %d", len(got))
	}

	if got := state.countMatching("GET"); got != 1 {
		t.Fatalf("expected filtering to issue no fetches, got %d GETs", got)
	}
}

func TestCreateValidatesLocally(t *testing.T) {
	view, state, done := newKnowledgeView(t)
	defer done()
	ctx := context.Background()

	if _, err := view.Create(ctx, ArticleInput{Content: "body"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := view.Create(ctx, ArticleInput{Title: "Title"}); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
	if got := state.countMatching("POST"); got != 0 {
		t.Fatalf("expected no POST for invalid input, got %d", got)
	}
}

func TestCreatePrependsServerArticle(t *testing.T) {
	view, state, done := newKnowledgeView(t)
	defer done()

	article, err := view.Create(context.Background(), ArticleInput{
		Title:   "New Article",
		Content: "Fresh content",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if article.ID != "new-1" {
		t.Fatalf("expected server id, got %q", article.ID)
	}
	if got := state.countMatching("POST"); got != 1 {
		t.Fatalf("expected 1 POST, got %d", got)
	}

	visible := view.Visible()
	if len(visible) != 4 {
		t.Fatalf("expected 4 articles after create, got %d", len(visible))
	}
	if visible[0].ID != "new-1" {
		t.Fatalf("expected new article prepended, got %q first", visible[0].ID)
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	view, state, done := newKnowledgeView(t)
	defer done()

	if err := view.Delete(context.Background(), "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := state.countMatching("DELETE /api/knowledge-base/articles/2"); got != 1 {
		t.Fatalf("expected exactly 1 DELETE for id 2, got %d", got)
	}

	visible := view.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 articles after delete, got %d", len(visible))
	}
	for _, a := range visible {
		if a.ID == "2" {
			t.Fatalf("expected article 2 removed")
		}
	}
}
