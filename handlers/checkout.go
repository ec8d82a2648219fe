package handlers

import (
	"net/http"

	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/labstack/echo/v4"
)

// GetCheckout renders the order summary together with the prefilled
// customer form.
func (h *Handler) GetCheckout(c echo.Context) error {
	view, err := h.shop.CheckoutSummary(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "checkout", "Checkout", view.Count, view)
}

// SubmitCustomer stores the customer form and moves on to payment.
func (h *Handler) SubmitCustomer(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	if _, err := h.shop.SaveCustomer(c.Request().Context(), sessionID(c), form); err != nil {
		return err
	}
	return advance(c, shop.Customer, shop.SubmitCustomer)
}
