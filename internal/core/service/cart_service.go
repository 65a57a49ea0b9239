package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

// CartService enforces cart ownership. The owner of every row is the email
// of the identity bound to ctx; nothing the client sends can change it.
type CartService struct {
	repo ports.CartRepository
	log  zerolog.Logger
}

func NewCartService(repo ports.CartRepository, log zerolog.Logger) *CartService {
	return &CartService{repo: repo, log: log}
}

func owner(ctx context.Context) (string, error) {
	claims, ok := domain.ClaimsFromContext(ctx)
	if !ok {
		return "", domain.ErrIdentityNotBound
	}
	return claims.Email(), nil
}

// Add stores attrs as a new row owned by the caller.
func (s *CartService) Add(ctx context.Context, attrs map[string]any) (string, error) {
	email, err := owner(ctx)
	if err != nil {
		return "", err
	}

	if forged, ok := attrs["email"]; ok && forged != email {
		s.log.Warn().Str("owner", email).Interface("forged", forged).Msg("client-supplied cart owner ignored")
	}

	id, err := s.repo.Insert(ctx, domain.NewCartItem(email, attrs))
	if err != nil {
		return "", err
	}
	return id, nil
}

// List returns only the caller's rows.
func (s *CartService) List(ctx context.Context) ([]*domain.CartItem, error) {
	email, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, email)
}

// Remove deletes the caller's row with id. A row that does not exist and a
// row owned by someone else are indistinguishable to the caller.
func (s *CartService) Remove(ctx context.Context, id string) error {
	email, err := owner(ctx)
	if err != nil {
		return err
	}

	n, err := s.repo.DeleteOwned(ctx, id, email)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCartItemNotFoundOrForbidden
	}
	return nil
}
