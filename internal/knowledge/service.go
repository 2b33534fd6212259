package knowledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied to newly created articles.
const (
	defaultAuthor = "AI Assistant"
	defaultRating = 3.1
)

// CreateInput carries the fields accepted when creating an article. Tags
// arrive as a comma-separated string, matching the editor form.
type CreateInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Content  string `json:"content"`
	Tags     string `json:"tags"`
	Author   string `json:"author"`
}

// Service contains business logic for knowledge base articles.
type Service struct {
	Repo Repo
}

// List returns every article, newest first.
func (s *Service) List(ctx context.Context) ([]Article, error) {
	return s.Repo.List(ctx)
}

// Create validates and stores a new article. Title and content are required.
func (s *Service) Create(ctx context.Context, in CreateInput) (Article, error) {
	if strings.TrimSpace(in.Title) == "" {
		return Article{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Content) == "" {
		return Article{}, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	now := time.Now().UTC()
	article := Article{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Category:    stringOrDefault(in.Category, DefaultCategory),
		Type:        stringOrDefault(in.Type, DefaultType),
		Content:     in.Content,
		Tags:        splitTags(in.Tags),
		Author:      stringOrDefault(in.Author, defaultAuthor),
		Views:       0,
		Rating:      defaultRating,
		CreatedDate: now.Format(DateFormat),
		CreatedAt:   now,
	}
	if err := s.Repo.Create(ctx, article); err != nil {
		return Article{}, err
	}
	return article, nil
}

// Delete removes an article.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}

func splitTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func stringOrDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
