package client

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// CategoryAll is the category filter sentinel meaning "no category filter".
const CategoryAll = "All Categories"

var (
	// ErrTitleRequired signals an article create with an empty title.
	ErrTitleRequired = errors.New("title is required")
	// ErrContentRequired signals an article create with empty content.
	ErrContentRequired = errors.New("content is required")
)

// KnowledgeView tracks the knowledge base screen. The full collection loads
// once; search and category filtering happen locally. Create validates
// before calling the server and prepends the stored article; Delete removes
// exactly the matching entry.
type KnowledgeView struct {
	client *Client

	mu       sync.Mutex
	articles []Article
	loaded   bool
	search   string
	category string
}

// NewKnowledgeView constructs a KnowledgeView over the given client.
func NewKnowledgeView(c *Client) *KnowledgeView {
	return &KnowledgeView{client: c, category: CategoryAll}
}

// Load fetches the collection on first call; later calls are no-ops.
func (v *KnowledgeView) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.loaded {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()
	return v.Reload(ctx)
}

// Reload refetches the collection unconditionally.
func (v *KnowledgeView) Reload(ctx context.Context) error {
	articles, err := v.client.ListArticles(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	v.articles = articles
	v.loaded = true
	v.mu.Unlock()
	return nil
}

// SetSearch updates the search input. Filtering is local; no fetch happens.
func (v *KnowledgeView) SetSearch(search string) {
	v.mu.Lock()
	v.search = search
	v.mu.Unlock()
}

// SetCategory updates the category filter. Filtering is local.
func (v *KnowledgeView) SetCategory(category string) {
	v.mu.Lock()
	v.category = category
	v.mu.Unlock()
}

// Visible returns the articles matching the current search and category.
// The search matches title, content and tags, case-insensitively.
func (v *KnowledgeView) Visible() []Article {
	v.mu.Lock()
	defer v.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(v.search))
	out := []Article{}
	for _, article := range v.articles {
		if v.category != "" && v.category != CategoryAll && article.Category != v.category {
			continue
		}
		if needle != "" && !articleMatches(article, needle) {
			continue
		}
		out = append(out, article)
	}
	return out
}

// Create validates locally, stores the article and prepends the server's
// copy to the collection. An empty title or content issues no request.
func (v *KnowledgeView) Create(ctx context.Context, in ArticleInput) (Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Article{}, ErrTitleRequired
	}
	if strings.TrimSpace(in.Content) == "" {
		return Article{}, ErrContentRequired
	}

	article, err := v.client.CreateArticle(ctx, in)
	if err != nil {
		return Article{}, err
	}

	v.mu.Lock()
	v.articles = append([]Article{article}, v.articles...)
	v.mu.Unlock()
	return article, nil
}

// Delete removes the article with the given id after one DELETE request.
func (v *KnowledgeView) Delete(ctx context.Context, id string) error {
	if err := v.client.DeleteArticle(ctx, id); err != nil {
		return err
	}

	v.mu.Lock()
	for i, article := range v.articles {
		if article.ID == id {
			v.articles = append(v.articles[:i], v.articles[i+1:]...)
			break
		}
	}
	v.mu.Unlock()
	return nil
}

func articleMatches(article Article, needle string) bool {
	if strings.Contains(strings.ToLower(article.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(article.Content), needle) {
		return true
	}
	for _, tag := range article.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
