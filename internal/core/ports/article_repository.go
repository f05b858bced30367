package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// ArticleUpdate carries the mutable fields of an article. Nil fields are
// left untouched; AuthorID is never updatable.
type ArticleUpdate struct {
	Title   *string
	Content *string
	Image   *string
	Tags    *[]string
}

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	// FindAll returns every article sorted by title ascending.
	FindAll(ctx context.Context) ([]*domain.Article, error)
	Update(ctx context.Context, id string, update ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
