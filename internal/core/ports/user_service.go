package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// Caller identifies the authenticated user behind a request, as recovered
// from the access token claims. Role may be stale with respect to the store;
// that staleness is accepted until the token is refreshed.
type Caller struct {
	ID   string
	Role string
}

// User converts the claims into a domain.User for access decisions.
func (c Caller) User() domain.User {
	return domain.User{ID: c.ID, Role: c.Role}
}

// UserService covers the admin-only user management operations.
type UserService interface {
	List(ctx context.Context, caller Caller) ([]*domain.User, error)
	ChangeRole(ctx context.Context, caller Caller, userID, role string) (*domain.User, error)
}
