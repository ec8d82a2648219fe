package handlers

import (
	"errors"
	"net/http"

	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/labstack/echo/v4"
)

type paymentPage struct {
	Alert string
	Field string
	Exp   string
}

func (h *Handler) GetPayment(c echo.Context) error {
	count := h.shop.CartCount(c.Request().Context(), sessionID(c))
	return h.render(c, http.StatusOK, "payment", "Payment", count, paymentPage{})
}

// SubmitPayment validates the card form and places the order. A rejected
// form is shown again with an alert naming the bad field.
func (h *Handler) SubmitPayment(c echo.Context) error {
	ctx := c.Request().Context()
	details := shop.PaymentDetails{
		CardNumber: c.FormValue("cardNumber"),
		Exp:        c.FormValue("exp"),
		CVV:        c.FormValue("cvv"),
	}

	_, err := h.shop.PlaceOrder(ctx, sessionID(c), details)
	var verr *shop.ValidationError
	if errors.As(err, &verr) {
		count := h.shop.CartCount(ctx, sessionID(c))
		return h.render(c, http.StatusUnprocessableEntity, "payment", "Payment", count, paymentPage{
			Alert: verr.Message,
			Field: verr.Field,
			Exp:   details.Exp,
		})
	}
	if err != nil {
		return err
	}
	return advance(c, shop.Payment, shop.SubmitPayment)
}

// GetConfirmation renders the stored order, or an empty page when there is none.
func (h *Handler) GetConfirmation(c echo.Context) error {
	ctx := c.Request().Context()
	view := h.shop.Confirmation(ctx, sessionID(c))
	return h.render(c, http.StatusOK, "confirmation", "Order confirmed", h.shop.CartCount(ctx, sessionID(c)), view)
}
