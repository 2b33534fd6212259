package knowledge

import "time"

// DateFormat is the wire format for created_date.
const DateFormat = "2006-01-02"

// Article categories and types shown in the knowledge base filters.
const (
	CategoryAll     = "All Categories"
	DefaultCategory = "Strategy"
	DefaultType     = "Article"
)

// Article is a knowledge base entry.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	Tags        []string  `json:"tags"`
	Author      string    `json:"author"`
	Views       int       `json:"views"`
	Rating      float64   `json:"rating"`
	CreatedDate string    `json:"created_date"`
	CreatedAt   time.Time `json:"-"`
}
