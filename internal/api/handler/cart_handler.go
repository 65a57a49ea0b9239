package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bdhub/shoe-api/internal/api/metrics"
	"github.com/bdhub/shoe-api/internal/core/domain"
	"github.com/bdhub/shoe-api/internal/core/ports"
)

// CartHandler exposes the caller's cart. The owner always comes from the
// verified identity; the service ignores any email in the body.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

func countCart(op string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrCartItemNotFoundOrForbidden):
		result = "not_found_or_forbidden"
	case err != nil:
		result = "error"
	}
	metrics.CartOperationsTotal.WithLabelValues(op, result).Inc()
}

// Add handles POST /carts.
//
// @Summary      Add an item to the caller's cart
// @Tags         carts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      map[string]interface{}  true  "Product reference"
// @Success      200   {object}  insertResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /carts [post]
func (h *CartHandler) Add(c echo.Context) error {
	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	id, err := h.service.Add(c.Request().Context(), body)
	countCart("add", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, inserted(id))
}

// List handles GET /carts.
//
// @Summary      List the caller's cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   map[string]interface{}
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /carts [get]
func (h *CartHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	countCart("list", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /carts/:id.
//
// @Summary      Remove an item from the caller's cart
// @Tags         carts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Cart item id"
// @Success      200  {object}  deleteResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /carts/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	err := h.service.Remove(c.Request().Context(), c.Param("id"))
	countCart("remove", err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, deleteResponse{Acknowledged: true, DeletedCount: 1})
}
