package ports

import (
	"context"

	"github.com/pressroom/publishing-api/internal/core/domain"
)

// UserRepository defines the persistence contract for identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindAll returns every user, newest first.
	FindAll(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
}
