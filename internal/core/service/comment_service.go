package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/pressroom/publishing-api/internal/api/metrics"
	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// CommentService implements comment creation and listing. Creation drives
// the live event pipeline: broadcast to everyone first, then a private
// notification to the article's author unless they commented themselves.
type CommentService struct {
	comments ports.CommentRepository
	articles ports.ArticleRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	articles ports.ArticleRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		articles: articles,
		notifier: notifier,
		log:      log,
	}
}

// notificationPayload is the unicast event body.
type notificationPayload struct {
	Message string `json:"message"`
}

// Create stores a comment and emits the live events. A store failure halts
// the pipeline before anything is emitted; once the comment is persisted
// the request never fails, whatever happens during delivery.
func (s *CommentService) Create(ctx context.Context, caller ports.Caller, input ports.CreateCommentInput) (*domain.Comment, error) {
	if d := domain.Decide(caller.User(), domain.ActionCreateComment, ""); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}

	// The article must exist; its author id drives the unicast target.
	article, err := s.articles.FindByID(ctx, input.ArticleID)
	if err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Content:   input.Content,
		ArticleID: article.ID,
		AuthorID:  caller.ID,
		ParentID:  input.ParentID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.CommentsCreatedTotal.Inc()

	// Broadcast strictly before the unicast evaluation.
	s.notifier.BroadcastAll(ports.EventNewComment, created)

	if article.AuthorID != caller.ID {
		s.notifier.NotifyUser(article.AuthorID, ports.EventNotification,
			notificationPayload{Message: "New comment on your article"})
	}

	s.log.Info().
		Str("comment_id", created.ID).
		Str("article_id", article.ID).
		Str("author_id", caller.ID).
		Msg("comment created")

	return created, nil
}

// ListByArticle returns an article's comments, oldest first. Public.
func (s *CommentService) ListByArticle(ctx context.Context, articleID string) ([]*domain.Comment, error) {
	return s.comments.FindByArticle(ctx, articleID)
}
