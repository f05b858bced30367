package service

import (
	"context"
	"fmt"

	"github.com/pressroom/publishing-api/internal/core/domain"
	"github.com/pressroom/publishing-api/internal/core/ports"
)

// UserService implements the admin-only user management operations.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every user, newest first. Admin only.
func (s *UserService) List(ctx context.Context, caller ports.Caller) ([]*domain.User, error) {
	if d := domain.Decide(caller.User(), domain.ActionListUsers, ""); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	return s.users.FindAll(ctx)
}

// ChangeRole sets a user's role. Admin only; the role must be one of the
// four known values. Outstanding access tokens keep their old role claim
// until they are refreshed or expire.
func (s *UserService) ChangeRole(ctx context.Context, caller ports.Caller, userID, role string) (*domain.User, error) {
	if d := domain.Decide(caller.User(), domain.ActionChangeRole, ""); !d.Allowed {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, d.Reason)
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.UpdateRole(ctx, userID, role)
}
