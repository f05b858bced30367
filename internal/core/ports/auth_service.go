package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at self-registration.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	// Role is optional and constrained to Reader/Writer/Editor; empty
	// defaults to Reader. The very first registered user is forced Admin.
	Role string
}

// LoginResult bundles the issued tokens with the authenticated user.
type LoginResult struct {
	Tokens TokenPair
	User   *domain.User
}

// AuthService covers registration, login and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
