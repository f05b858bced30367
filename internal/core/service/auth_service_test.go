package service

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// stubUserRepo is an in-memory UserRepository shared by the service tests.
type stubUserRepo struct {
	users []*domain.User
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users = append(r.users, created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, cloneUser(r.users[i]))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id, role string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService(repo *stubUserRepo) (*AuthService, *TokenService) {
	tokens := NewTokenService(repo, "access-secret", "refresh-secret", 0, 0)
	return NewAuthService(repo, tokens), tokens
}

func TestAuthService_Register_FirstUserIsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123", Role: domain.RoleReader,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected first user forced to Admin, got %s", user.Role)
	}
}

func TestAuthService_Register_SecondUserKeepsRequestedRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pass123", Role: domain.RoleWriter,
	})
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}
	if user.Role != domain.RoleWriter {
		t.Fatalf("expected Writer, got %s", user.Role)
	}
}

func TestAuthService_Register_DefaultsToReader(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123",
	})
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleReader {
		t.Fatalf("expected Reader default, got %s", user.Role)
	}
}

func TestAuthService_Register_AdminNotSelfAssignable(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123",
	})
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "mallory", Email: "mallory@example.com", Password: "pass123", Role: domain.RoleAdmin,
	}); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pass123",
	})
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "other",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// unindexedUserRepo accepts every insert, modelling a collection whose
// unique indexes are missing. Register must reject duplicates on its own.
type unindexedUserRepo struct {
	stubUserRepo
}

func (r *unindexedUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.seq++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.seq)
	r.users = append(r.users, created)
	return cloneUser(created), nil
}

func TestAuthService_Register_DuplicateWithoutStoreGuard(t *testing.T) {
	repo := &unindexedUserRepo{}
	tokens := NewTokenService(repo, "access-secret", "refresh-secret", 0, 0)
	svc := NewAuthService(repo, tokens)
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "pass123",
	}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Same username, different email.
	if _, err := svc.Register(ctx, ports.RegisterInput{
		Username: "bob", Email: "bob2@example.com", Password: "pass123",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for taken username, got %v", err)
	}

	// Same email, different username.
	if _, err := svc.Register(ctx, ports.RegisterInput{
		Username: "robert", Email: "bob@example.com", Password: "pass123",
	}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for taken email, got %v", err)
	}

	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected 1 stored user, got %d", n)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "s3cret1",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Tokens.AccessToken == "" || result.Tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens, got %+v", result.Tokens)
	}
	if result.User == nil || result.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", result.User)
	}

	id, role, err := tokens.VerifyAccess(result.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if id != result.User.ID || role != domain.RoleAdmin {
		t.Fatalf("unexpected claims: id=%s role=%s", id, role)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave", Email: "dave@example.com", Password: "goodpass",
	})
	if _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newTestAuthService(repo)

	if _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
