package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/api/metrics"
	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

// RequireAdmin lets the request through only when the identity bound by
// Identity holds the admin role. It must be installed after Identity: when
// no claims are bound it fails the request with a 500 instead of letting it
// through.
func RequireAdmin(authority ports.RoleAuthority, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := domain.ClaimsFromContext(c.Request().Context())
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("identity_not_bound").Inc()
				log.Error().Str("method", c.Request().Method).Str("path", c.Path()).
					Msg("admin check reached without a verified identity; Identity must run first")
				return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").
					SetInternal(domain.ErrIdentityNotBound)
			}

			admin, err := authority.IsAdmin(c.Request().Context(), claims)
			if err != nil {
				return fmt.Errorf("require admin: %w", err)
			}
			if !admin {
				metrics.AuthRejectionsTotal.WithLabelValues("insufficient_role").Inc()
				log.Info().Str("email", claims.Email()).Str("path", c.Path()).Msg("admin role required")
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access").
					SetInternal(domain.ErrInsufficientRole)
			}
			return next(c)
		}
	}
}

// AdminOnly is the only supported way to gate a route on the admin role: it
// returns Identity followed by RequireAdmin, in that order.
func AdminOnly(tokens ports.TokenService, authority ports.RoleAuthority, log zerolog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		Identity(tokens, log),
		RequireAdmin(authority, log),
	}
}
