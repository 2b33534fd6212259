package knowledge

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

const articleColumns = "id, title, category, type, content, tags, author, views, rating, created_at"

// PGRepo is a Postgres implementation of Repo.
type PGRepo struct {
	DB *sql.DB
}

// NewPGRepo constructs a PGRepo.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

func (r *PGRepo) List(ctx context.Context) ([]Article, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+articleColumns+" FROM knowledge_articles ORDER BY created_at DESC, id")
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, article Article) error {
	tags, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.DB.ExecContext(ctx,
		`INSERT INTO knowledge_articles (`+articleColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		article.ID, article.Title, article.Category, article.Type, article.Content,
		tags, article.Author, article.Views, article.Rating, article.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM knowledge_articles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanArticle(rows *sql.Rows) (Article, error) {
	var (
		article Article
		tags    []byte
	)
	if err := rows.Scan(&article.ID, &article.Title, &article.Category, &article.Type,
		&article.Content, &tags, &article.Author, &article.Views, &article.Rating,
		&article.CreatedAt); err != nil {
		return Article{}, fmt.Errorf("scan article: %w", err)
	}
	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &article.Tags); err != nil {
			return Article{}, fmt.Errorf("unmarshal tags: %w", err)
		}
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	article.CreatedDate = article.CreatedAt.Format(DateFormat)
	return article, nil
}
