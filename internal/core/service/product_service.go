package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

const maxSuggestions = 10

type ProductService struct {
	repo  ports.ProductRepository
	cache ports.SuggestionCache
	log   zerolog.Logger
}

// NewProductService wires the catalog use cases. cache may be nil, in which
// case suggestions always hit the repository.
func NewProductService(repo ports.ProductRepository, cache ports.SuggestionCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p *domain.Product) (string, error) {
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", err
	}
	s.invalidate(ctx)
	s.log.Info().Str("product_id", id).Str("name", p.Name).Msg("product created")
	return id, nil
}

func (s *ProductService) Update(ctx context.Context, id string, patch domain.ProductPatch) (*ports.WriteResult, error) {
	matched, modified, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		s.invalidate(ctx)
	}
	return &ports.WriteResult{Matched: matched, Modified: modified}, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (*ports.WriteResult, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		s.invalidate(ctx)
	}
	s.log.Info().Str("product_id", id).Int64("deleted", n).Msg("product deleted")
	return &ports.WriteResult{Deleted: n}, nil
}

// Search matches q anywhere in the product name, ignoring case. An empty
// query matches nothing; whitespace is part of the query.
func (s *ProductService) Search(ctx context.Context, q string) ([]*domain.Product, error) {
	if q == "" {
		return []*domain.Product{}, nil
	}
	return s.repo.SearchByName(ctx, q)
}

// Suggestions returns up to ten product names starting with q, ignoring case.
func (s *ProductService) Suggestions(ctx context.Context, q string) ([]string, error) {
	q = strings.ToLower(q)
	if q == "" {
		return []string{}, nil
	}

	if s.cache != nil {
		names, ok, err := s.cache.Get(ctx, q)
		if err != nil {
			s.log.Warn().Err(err).Str("q", q).Msg("suggestion cache read failed")
		} else if ok {
			return names, nil
		}
	}

	names, err := s.repo.NamesWithPrefix(ctx, q, maxSuggestions)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, names); err != nil {
			s.log.Warn().Err(err).Str("q", q).Msg("suggestion cache write failed")
		}
	}
	return names, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("suggestion cache invalidation failed")
	}
}
