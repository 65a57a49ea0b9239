package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

// RoleAuthority resolves admin privilege from the stored user record. An
// identity without a record is never privileged.
type RoleAuthority struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewRoleAuthority(users ports.UserRepository, log zerolog.Logger) *RoleAuthority {
	return &RoleAuthority{users: users, log: log}
}

// IsAdmin reports whether claims identify a user whose role is admin.
// A missing user is (false, nil); only storage failures return an error.
func (a *RoleAuthority) IsAdmin(ctx context.Context, claims domain.Claims) (bool, error) {
	email := claims.Email()
	if email == "" {
		return false, nil
	}

	user, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			a.log.Debug().Str("email", email).Msg("role lookup: no user record")
			return false, nil
		}
		return false, fmt.Errorf("role lookup: %w", err)
	}
	return user.IsAdmin(), nil
}
