package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// TokenPair is the result of a successful login: a short-lived access token
// and a long-lived refresh token, signed with distinct secrets.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues, verifies and refreshes signed session tokens.
type TokenService interface {
	// Issue encodes {id, role} into an access token and {id} into a
	// refresh token.
	Issue(user *domain.User) (TokenPair, error)

	// VerifyAccess validates signature and expiry and returns the id and
	// role exactly as embedded in the token. No store lookup happens here:
	// a role change only becomes visible on the next refresh or login.
	VerifyAccess(token string) (id, role string, err error)

	// Refresh validates a refresh token, re-reads the user's current role
	// from the store, and issues a fresh access token. Fails with
	// domain.ErrInvalidRefresh on a bad signature or elapsed expiry and
	// with domain.ErrUserNotFound when the user no longer exists.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
