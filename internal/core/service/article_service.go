package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// ArticleService implements article use cases behind the access decision
// table. Route-level RBAC already rejects the cheap cases; the ownership
// rule for edits needs the stored article and so lives here.
type ArticleService struct {
	articles ports.ArticleRepository
}

func NewArticleService(articles ports.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles}
}

// Create stores a new article authored by the caller.
func (s *ArticleService) Create(ctx context.Context, caller ports.Caller, input ports.CreateArticleInput) (*domain.Article, error) {
	if d := domain.Decide(caller.User(), domain.ActionCreateArticle, ""); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}

	now := time.Now().UTC()
	article := &domain.Article{
		Title:     input.Title,
		Content:   input.Content,
		Image:     input.Image,
		Tags:      input.Tags,
		AuthorID:  caller.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.articles.Create(ctx, article)
}

// Get returns a single article. Public.
func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

// List returns all articles sorted by title. Public.
func (s *ArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	return s.articles.FindAll(ctx)
}

// Update applies a partial edit. Editors and Admins may edit anything; a
// Writer only their own article. The role gate is evaluated before the
// ownership check, so ownership alone never grants access.
func (s *ArticleService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateArticleInput) (*domain.Article, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := domain.Decide(caller.User(), domain.ActionEditArticle, article.AuthorID); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}

	return s.articles.Update(ctx, id, ports.ArticleUpdate{
		Title:   input.Title,
		Content: input.Content,
		Image:   input.Image,
		Tags:    input.Tags,
	})
}

// Delete removes an article. Admin only.
func (s *ArticleService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	if d := domain.Decide(caller.User(), domain.ActionDeleteArticle, ""); !d.Allowed {
		return fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	return s.articles.Delete(ctx, id)
}
