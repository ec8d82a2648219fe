package handlers

import (
	"net/http"

	"github.com/Madhav-Gupta-28/noemie-shop-go/apperror"
	"github.com/Madhav-Gupta-28/noemie-shop-go/models"
	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/labstack/echo/v4"
)

type cartResponse struct {
	Items  models.Cart   `json:"items"`
	Count  int           `json:"count"`
	Totals models.Totals `json:"totals"`
}

func (h *Handler) cartResponse(c echo.Context) error {
	view, err := h.shop.CartPage(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}

	resp := cartResponse{Items: models.Cart{}, Count: view.Count, Totals: view.Totals}
	for _, line := range view.Lines {
		resp.Items = append(resp.Items, line.Item)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetCartAPI returns the cart, its count and its cart-page totals.
func (h *Handler) GetCartAPI(c echo.Context) error {
	return h.cartResponse(c)
}

func (h *Handler) AddToCartAPI(c echo.Context) error {
	var req struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
		Qty   int     `json:"qty"`
	}
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request format")
	}

	item, err := shop.NewItem(req.ID, req.Name, req.Price, req.Qty)
	if err != nil {
		return err
	}
	if _, err := h.shop.AddToCart(c.Request().Context(), sessionID(c), h.shop.Catalog().Resolve(item)); err != nil {
		return err
	}
	return h.cartResponse(c)
}

func (h *Handler) UpdateCartItemQuantity(c echo.Context) error {
	var req struct {
		ID  string `json:"id"`
		Qty int    `json:"qty"`
	}
	if err := c.Bind(&req); err != nil {
		return apperror.BadRequest("invalid request format")
	}

	if _, err := h.shop.SetQuantity(c.Request().Context(), sessionID(c), req.ID, req.Qty); err != nil {
		return err
	}
	return h.cartResponse(c)
}

func (h *Handler) RemoveFromCart(c echo.Context) error {
	if _, err := h.shop.Remove(c.Request().Context(), sessionID(c), itemID(c)); err != nil {
		return err
	}
	return h.cartResponse(c)
}

// GetOrder returns the last order of the session.
func (h *Handler) GetOrder(c echo.Context) error {
	order, ok := h.shop.ReadOrder(c.Request().Context(), sessionID(c))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Order not found"})
	}
	return c.JSON(http.StatusOK, order)
}
