package ports

import (
	"context"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

// ProductRepository persists catalog entries.
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound when the id does not exist.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (string, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (int64, error)
	// SearchByName returns products whose name contains term, case-insensitive.
	SearchByName(ctx context.Context, term string) ([]*domain.Product, error)
	// NamesWithPrefix returns at most limit names starting with prefix, case-insensitive.
	NamesWithPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

// SuggestionCache stores suggestion lists by normalised query.
type SuggestionCache interface {
	// Get reports a miss with ok == false and a nil error.
	Get(ctx context.Context, query string) (names []string, ok bool, err error)
	Set(ctx context.Context, query string, names []string) error
	Invalidate(ctx context.Context) error
}
