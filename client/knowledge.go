package client

import (
	"context"
	"net/http"
	"net/url"
)

// ArticleInput carries the fields accepted when creating an article. Tags
// are a comma-separated string, matching the editor form.
type ArticleInput struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Type     string `json:"type,omitempty"`
	Content  string `json:"content"`
	Tags     string `json:"tags,omitempty"`
	Author   string `json:"author,omitempty"`
}

// ListArticles fetches every knowledge base article.
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out struct {
		Articles []Article `json:"articles"`
	}
	err := c.do(ctx, http.MethodGet, "/api/knowledge-base/articles", nil, nil, &out)
	return out.Articles, err
}

// CreateArticle creates a knowledge base article.
func (c *Client) CreateArticle(ctx context.Context, in ArticleInput) (Article, error) {
	var out struct {
		Article Article `json:"article"`
	}
	err := c.do(ctx, http.MethodPost, "/api/knowledge-base/articles", nil, in, &out)
	return out.Article, err
}

// DeleteArticle removes a knowledge base article.
func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/knowledge-base/articles/"+url.PathEscape(id), nil, nil, nil)
}
