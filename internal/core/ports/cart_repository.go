package ports

import (
	"context"

	"github.com/bdhub/shoe-api/internal/core/domain"
)

// CartRepository persists cart rows. Every read and delete is scoped by owner
// email; there is no unscoped accessor.
type CartRepository interface {
	Insert(ctx context.Context, item *domain.CartItem) (string, error)
	ListByOwner(ctx context.Context, email string) ([]*domain.CartItem, error)
	// DeleteOwned deletes the row matching both id and owner email and
	// returns how many rows went away (0 or 1).
	DeleteOwned(ctx context.Context, id, email string) (int64, error)
}
