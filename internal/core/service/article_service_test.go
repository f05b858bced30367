package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// stubArticleRepo is an in-memory ArticleRepository.
type stubArticleRepo struct {
	articles map[string]*domain.Article
	seq      int
	failNext error
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[string]*domain.Article)}
}

func cloneArticle(a *domain.Article) *domain.Article {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubArticleRepo) Create(_ context.Context, article *domain.Article) (*domain.Article, error) {
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return nil, err
	}
	r.seq++
	created := cloneArticle(article)
	created.ID = fmt.Sprintf("a%d", r.seq)
	r.articles[created.ID] = created
	return cloneArticle(created), nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) FindAll(_ context.Context) ([]*domain.Article, error) {
	out := make([]*domain.Article, 0, len(r.articles))
	for _, a := range r.articles {
		out = append(out, cloneArticle(a))
	}
	return out, nil
}

func (r *stubArticleRepo) Update(_ context.Context, id string, update ports.ArticleUpdate) (*domain.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, domain.ErrArticleNotFound
	}
	if update.Title != nil {
		a.Title = *update.Title
	}
	if update.Content != nil {
		a.Content = *update.Content
	}
	if update.Image != nil {
		a.Image = *update.Image
	}
	if update.Tags != nil {
		a.Tags = *update.Tags
	}
	return cloneArticle(a), nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.articles[id]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestArticleService_Create_RoleGate(t *testing.T) {
	repo := newStubArticleRepo()
	svc := NewArticleService(repo)

	writer := ports.Caller{ID: "writer1", Role: domain.RoleWriter}
	article, err := svc.Create(context.Background(), writer, ports.CreateArticleInput{
		Title: "Go generics", Content: "body",
	})
	if err != nil {
		t.Fatalf("writer create failed: %v", err)
	}
	if article.AuthorID != "writer1" {
		t.Fatalf("expected author fixed to caller, got %s", article.AuthorID)
	}

	reader := ports.Caller{ID: "reader1", Role: domain.RoleReader}
	_, err = svc.Create(context.Background(), reader, ports.CreateArticleInput{Title: "t", Content: "c"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for reader, got %v", err)
	}
	if !strings.Contains(err.Error(), domain.ReasonInsufficientRole) {
		t.Fatalf("expected reason in error, got %q", err.Error())
	}
}

func TestArticleService_Update_OwnershipRules(t *testing.T) {
	repo := newStubArticleRepo()
	svc := NewArticleService(repo)

	owner := ports.Caller{ID: "writer1", Role: domain.RoleWriter}
	article, err := svc.Create(context.Background(), owner, ports.CreateArticleInput{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Owner edits their own article.
	updated, err := svc.Update(context.Background(), owner, article.ID, ports.UpdateArticleInput{Content: strPtr("edited")})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("expected content updated, got %q", updated.Content)
	}

	// A different writer is denied as not-owner.
	other := ports.Caller{ID: "writer2", Role: domain.RoleWriter}
	_, err = svc.Update(context.Background(), other, article.ID, ports.UpdateArticleInput{Content: strPtr("hijack")})
	if !errors.Is(err, domain.ErrForbidden) || !strings.Contains(err.Error(), domain.ReasonNotOwner) {
		t.Fatalf("expected not-owner denial, got %v", err)
	}

	// An editor edits anyone's article.
	editor := ports.Caller{ID: "editor1", Role: domain.RoleEditor}
	if _, err := svc.Update(context.Background(), editor, article.ID, ports.UpdateArticleInput{Title: strPtr("t2")}); err != nil {
		t.Fatalf("editor update failed: %v", err)
	}

	// A reader is denied on role before ownership is even considered.
	reader := ports.Caller{ID: "reader1", Role: domain.RoleReader}
	_, err = svc.Update(context.Background(), reader, article.ID, ports.UpdateArticleInput{Title: strPtr("nope")})
	if !errors.Is(err, domain.ErrForbidden) || !strings.Contains(err.Error(), domain.ReasonInsufficientRole) {
		t.Fatalf("expected insufficient-role denial, got %v", err)
	}
}

func TestArticleService_Update_NotFound(t *testing.T) {
	repo := newStubArticleRepo()
	svc := NewArticleService(repo)

	editor := ports.Caller{ID: "editor1", Role: domain.RoleEditor}
	if _, err := svc.Update(context.Background(), editor, "missing", ports.UpdateArticleInput{}); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleService_Delete_AdminOnly(t *testing.T) {
	repo := newStubArticleRepo()
	svc := NewArticleService(repo)

	owner := ports.Caller{ID: "writer1", Role: domain.RoleWriter}
	article, _ := svc.Create(context.Background(), owner, ports.CreateArticleInput{Title: "t", Content: "c"})

	// Even the owner cannot delete without Admin.
	if err := svc.Delete(context.Background(), owner, article.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for owner, got %v", err)
	}

	admin := ports.Caller{ID: "admin1", Role: domain.RoleAdmin}
	if err := svc.Delete(context.Background(), admin, article.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), article.ID); !errors.Is(err, domain.ErrArticleNotFound) {
		t.Fatalf("expected article gone, got %v", err)
	}
}

// Mirrors the full multi-user scenario: first registrant becomes Admin, a
// Writer authors an article, the Admin alone may delete it, the Writer
// alone may edit it, and a second Writer may do neither.
func TestArticleService_EndToEndPermissions(t *testing.T) {
	userRepo := newStubUserRepo()
	authSvc, _ := newTestAuthService(userRepo)
	articleRepo := newStubArticleRepo()
	articleSvc := NewArticleService(articleRepo)
	ctx := context.Background()

	user1, err := authSvc.Register(ctx, ports.RegisterInput{
		Username: "user1", Email: "user1@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register user1: %v", err)
	}
	if user1.Role != domain.RoleAdmin {
		t.Fatalf("expected user1 Admin, got %s", user1.Role)
	}

	user2, err := authSvc.Register(ctx, ports.RegisterInput{
		Username: "user2", Email: "user2@example.com", Password: "pass123", Role: domain.RoleWriter,
	})
	if err != nil {
		t.Fatalf("register user2: %v", err)
	}

	user3, err := authSvc.Register(ctx, ports.RegisterInput{
		Username: "user3", Email: "user3@example.com", Password: "pass123", Role: domain.RoleWriter,
	})
	if err != nil {
		t.Fatalf("register user3: %v", err)
	}

	caller2 := ports.Caller{ID: user2.ID, Role: user2.Role}
	article, err := articleSvc.Create(ctx, caller2, ports.CreateArticleInput{Title: "X", Content: "body"})
	if err != nil {
		t.Fatalf("user2 create article: %v", err)
	}

	// user2 cannot delete their own article.
	if err := articleSvc.Delete(ctx, caller2, article.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected writer delete denied, got %v", err)
	}

	// user2 can edit it as owner.
	if _, err := articleSvc.Update(ctx, caller2, article.ID, ports.UpdateArticleInput{Content: strPtr("v2")}); err != nil {
		t.Fatalf("owner edit failed: %v", err)
	}

	// user3, also a Writer, can do neither.
	caller3 := ports.Caller{ID: user3.ID, Role: user3.Role}
	if _, err := articleSvc.Update(ctx, caller3, article.ID, ports.UpdateArticleInput{Content: strPtr("v3")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected third writer edit denied, got %v", err)
	}

	// user1, the Admin, deletes it.
	caller1 := ports.Caller{ID: user1.ID, Role: user1.Role}
	if err := articleSvc.Delete(ctx, caller1, article.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
}
