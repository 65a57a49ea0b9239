package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/api/metrics"
	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// Identity verifies the bearer token and binds its claims to the request
// context. An absent or malformed header is 401; a token that is present but
// fails verification is 403. Which verification check failed is logged and
// never returned to the client.
func Identity(tokens ports.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_credential").Inc()
				log.Debug().Str("path", c.Path()).Msg("missing or malformed authorization header")
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access").
					SetInternal(domain.ErrMissingCredential)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				reason := rejectionReason(err)
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				log.Warn().Err(err).Str("reason", reason).Str("path", c.Path()).Msg("token verification failed")
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access").
					SetInternal(domain.ErrInvalidCredential)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(domain.ContextWithClaims(req.Context(), claims)))
			return next(c)
		}
	}
}

// bearerToken returns whatever follows the exact "Bearer " prefix. An empty
// remainder is still a presented credential and is left to Verify to reject.
func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, domain.ErrTokenSignatureInvalid):
		return "token_signature_invalid"
	default:
		return "token_malformed"
	}
}
