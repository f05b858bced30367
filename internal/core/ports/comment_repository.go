package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	// FindByArticle returns the comments on an article, oldest first.
	FindByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error)
}
