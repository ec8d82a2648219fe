package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetProducts renders the catalog with its add-to-cart buttons.
func (h *Handler) GetProducts(c echo.Context) error {
	count := h.shop.CartCount(c.Request().Context(), sessionID(c))
	return h.render(c, http.StatusOK, "products", "Products", count, h.shop.Catalog())
}
