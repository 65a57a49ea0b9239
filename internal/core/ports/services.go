package ports

import (
	"context"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

// RoleAuthority decides whether a verified identity holds the admin role.
type RoleAuthority interface {
	IsAdmin(ctx context.Context, claims domain.Claims) (bool, error)
}

// RegisterResult reports the outcome of an idempotent registration.
type RegisterResult struct {
	InsertedID string
	Existed    bool
}

// WriteResult mirrors the acknowledgement a document store returns for an
// update or delete.
type WriteResult struct {
	Matched  int64
	Modified int64
	Deleted  int64
}

type UserService interface {
	Register(ctx context.Context, user *domain.User) (*RegisterResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	// AdminStatus requires email to equal the verified identity in ctx.
	AdminStatus(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id string) (*WriteResult, error)
	Promote(ctx context.Context, id string) (*WriteResult, error)
}

type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (string, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*WriteResult, error)
	Delete(ctx context.Context, id string) (*WriteResult, error)
	Search(ctx context.Context, q string) ([]*domain.Product, error)
	Suggestions(ctx context.Context, q string) ([]string, error)
}

// CartService applies the ownership policy: the owner of every row it
// touches is the identity bound to ctx.
type CartService interface {
	Add(ctx context.Context, attrs map[string]any) (string, error)
	List(ctx context.Context) ([]*domain.CartItem, error)
	Remove(ctx context.Context, id string) error
}
