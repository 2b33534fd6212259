package knowledge

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SeedArticles loads the starter articles into an empty repo. Bootstrap
// calls this for the in-memory repo so the dashboard has content on first
// run; a populated repo is left alone.
func SeedArticles(ctx context.Context, repo Repo) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, article := range seedArticles() {
		if err := repo.Create(ctx, article); err != nil {
			return err
		}
	}
	return nil
}

func seedArticles() []Article {
	return []Article{
		{
			ID:          uuid.NewString(),
			Title:       "Digital Media Planning Best Practices",
			Category:    "Strategy",
			Type:        "Article",
			Content:     "Digital media planning is the strategic process of identifying and selecting optimal digital channels...",
			Tags:        []string{"Digital", "Planning", "Strategy"},
			Author:      "Media Strategy Team",
			Views:       245,
			Rating:      4.8,
			CreatedDate: "2025-03-01",
			CreatedAt:   mustDate("2025-03-01"),
		},
		{
			ID:          uuid.NewString(),
			Title:       "Programmatic Advertising Fundamentals",
			Category:    "Technology",
			Type:        "Guide",
			Content:     "Programmatic advertising represents the automated buying and selling of digital advertising space...",
			Tags:        []string{"Programmatic", "RTB", "Technology"},
			Author:      "Tech Innovation Team",
			Views:       189,
			Rating:      4.6,
			CreatedDate: "2025-02-15",
			CreatedAt:   mustDate("2025-02-15"),
		},
		{
			ID:          uuid.NewString(),
			Title:       "Advanced Media Buying Strategies for 2025",
			Category:    "Strategy",
			Type:        "Article",
			Content:     "This comprehensive guide covers the latest media buying strategies for 2025, including programmatic advertising trends, AI-powered optimization techniques, and cross-platform campaign management.",
			Tags:        []string{"strategy", "digital media", "best practices"},
			Author:      "AI Assistant",
			Views:       0,
			Rating:      3.1,
			CreatedDate: "2025-09-19",
			CreatedAt:   mustDate("2025-09-19"),
		},
	}
}

func mustDate(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}
