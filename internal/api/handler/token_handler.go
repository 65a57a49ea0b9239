package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bdhub/shoe-api/internal/api/metrics"
	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue signs the request body as token claims.
//
// @Summary      Issue an identity token
// @Description  Signs the JSON body (must contain an email) into a token valid for one hour.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Claims, at least {\"email\": \"...\"}"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  messageResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, err := h.tokens.Issue(domain.Claims(body))
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.Inc()
	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}
