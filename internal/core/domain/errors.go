package domain

import "errors"

// Authorization failures. The HTTP error handler maps each to a fixed status.
var (
	ErrMissingCredential           = errors.New("missing or malformed credential")
	ErrInvalidCredential           = errors.New("invalid credential")
	ErrInsufficientRole            = errors.New("admin role required")
	ErrForbidden                   = errors.New("access forbidden")
	ErrCartItemNotFoundOrForbidden = errors.New("cart item not found or you do not have permission to delete it")
	ErrIdentityNotBound            = errors.New("no verified identity bound to request")
)

// Token failures returned by the token service. All of them collapse to
// ErrInvalidCredential at the HTTP boundary.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrInvalidClaims         = errors.New("claims must carry an email")
	ErrMissingSigningSecret  = errors.New("token signing secret is not configured")
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidID       = errors.New("invalid id")
)
