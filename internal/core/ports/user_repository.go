package ports

import (
	"context"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

// UserRepository persists users keyed by email.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Create returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	// SetRole returns the matched and modified counts.
	SetRole(ctx context.Context, id, role string) (int64, int64, error)
}
