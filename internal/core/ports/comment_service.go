package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	Content   string
	ArticleID string
	ParentID  string
}

// CommentService defines use-case operations for comments. Creation emits
// the live events; listing is public.
type CommentService interface {
	Create(ctx context.Context, caller Caller, input CreateCommentInput) (*domain.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error)
}
