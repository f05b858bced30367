package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// CreateArticleInput carries the fields for a new article. The author is
// always the caller; clients cannot attribute articles to someone else.
type CreateArticleInput struct {
	Title   string
	Content string
	Image   string
	Tags    []string
}

// UpdateArticleInput carries a partial article update.
type UpdateArticleInput struct {
	Title   *string
	Content *string
	Image   *string
	Tags    *[]string
}

// ArticleService defines use-case operations for articles. Read operations
// are public; mutations are gated by the access decision table.
type ArticleService interface {
	Create(ctx context.Context, caller Caller, input CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context) ([]*domain.Article, error)
	Update(ctx context.Context, caller Caller, id string, input UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, caller Caller, id string) error
}
