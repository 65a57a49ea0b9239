package ports

import "github.com/bdhub/shoe-api/internal/core/domain"

// TokenService issues and verifies signed identity tokens.
type TokenService interface {
	Issue(claims domain.Claims) (string, error)
	// Verify returns the claims exactly as issued, or one of
	// domain.ErrTokenMalformed, domain.ErrTokenExpired,
	// domain.ErrTokenSignatureInvalid.
	Verify(token string) (domain.Claims, error)
}
