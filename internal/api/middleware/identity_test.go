package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/service"
)

var nopLog = zerolog.Nop()

func newTokens(t *testing.T) *service.TokenService {
	t.Helper()
	svc, err := service.NewTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func runIdentity(t *testing.T, header string) (*httptest.ResponseRecorder, bool, domain.Claims) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		called bool
		bound  domain.Claims
	)
	handler := Identity(newTokens(t), nopLog)(func(c echo.Context) error {
		called = true
		bound, _ = domain.ClaimsFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, called, bound
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestIdentity_ValidToken(t *testing.T) {
	token, err := newTokens(t).Issue(domain.Claims{"email": "a@x.com", "name": "Alice"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	rec, called, claims := runIdentity(t, "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if claims.Email() != "a@x.com" || claims["name"] != "Alice" {
		t.Fatalf("claims not bound: %v", claims)
	}
}

func TestIdentity_MissingOrMalformedHeader(t *testing.T) {
	for _, header := range []string{"", "Token abc", "Bearer", "Basic dXNlcjpwYXNz", "bearer abc", "BEARER abc"} {
		rec, called, _ := runIdentity(t, header)
		if called {
			t.Fatalf("%q: should not reach next", header)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", header, rec.Code)
		}
		if msg := messageOf(t, rec); msg != "unauthorized access" {
			t.Fatalf("%q: unexpected message %q", header, msg)
		}
	}
}

func TestIdentity_InvalidToken(t *testing.T) {
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("someone-else"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	for name, token := range map[string]string{
		"malformed": "not-a-token",
		"empty":     "",
		"blank":     "    ",
		"foreign":   foreign,
		"expired":   expired,
	} {
		rec, called, _ := runIdentity(t, "Bearer "+token)
		if called {
			t.Fatalf("%s: should not reach next", name)
		}
		if rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", name, rec.Code)
		}
		if msg := messageOf(t, rec); msg != "forbidden access" {
			t.Fatalf("%s: sub-kind leaked in message %q", name, msg)
		}
	}
}

func TestIdentity_SchemeIsCaseSensitive(t *testing.T) {
	token, _ := newTokens(t).Issue(domain.Claims{"email": "a@x.com"})
	for _, scheme := range []string{"bearer ", "BEARER "} {
		rec, called, _ := runIdentity(t, scheme+token)
		if called || rec.Code != http.StatusUnauthorized {
			t.Fatalf("%q: expected 401, got %d", scheme, rec.Code)
		}
	}
}
