package knowledge

import "context"

// Repo abstracts article storage.
type Repo interface {
	List(ctx context.Context) ([]Article, error)
	Create(ctx context.Context, article Article) error
	Delete(ctx context.Context, id string) error
}
