package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

type UserService struct {
	repo      ports.UserRepository
	authority ports.RoleAuthority
	log       zerolog.Logger
}

func NewUserService(repo ports.UserRepository, authority ports.RoleAuthority, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, authority: authority, log: log}
}

// Register inserts user unless one with the same email exists, in which case
// it reports Existed and writes nothing. Any client-provided role is dropped.
func (s *UserService) Register(ctx context.Context, user *domain.User) (*ports.RegisterResult, error) {
	_, err := s.repo.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return &ports.RegisterResult{Existed: true}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	doc := *user
	doc.ID = ""
	doc.Role = ""
	doc.CreatedAt = time.Now().UTC()

	id, err := s.repo.Create(ctx, &doc)
	if errors.Is(err, domain.ErrUserExists) {
		// lost a race with a concurrent registration of the same email
		return &ports.RegisterResult{Existed: true}, nil
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("email", user.Email).Str("user_id", id).Msg("user registered")
	return &ports.RegisterResult{InsertedID: id}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// AdminStatus answers for the caller only: email must be exactly the
// verified identity's email, otherwise domain.ErrForbidden.
func (s *UserService) AdminStatus(ctx context.Context, email string) (bool, error) {
	claims, ok := domain.ClaimsFromContext(ctx)
	if !ok {
		return false, domain.ErrIdentityNotBound
	}
	if email != claims.Email() {
		return false, domain.ErrForbidden
	}
	return s.authority.IsAdmin(ctx, claims)
}

func (s *UserService) Delete(ctx context.Context, id string) (*ports.WriteResult, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Int64("deleted", n).Msg("user deleted")
	return &ports.WriteResult{Deleted: n}, nil
}

// Promote sets the admin role on the user with id. Repeating it is harmless.
func (s *UserService) Promote(ctx context.Context, id string) (*ports.WriteResult, error) {
	matched, modified, err := s.repo.SetRole(ctx, id, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", id).Int64("matched", matched).Msg("user promoted to admin")
	return &ports.WriteResult{Matched: matched, Modified: modified}, nil
}
