package handlers

import (
	"net/http"
	"net/url"

	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/labstack/echo/v4"
)

// AddToCart handles the add-to-cart buttons. Browsers are sent back to the
// page they came from; JSON clients get the new item count.
func (h *Handler) AddToCart(c echo.Context) error {
	item, err := shop.ParseItem(c.FormValue("id"), c.FormValue("name"), c.FormValue("price"), c.FormValue("qty"))
	if err != nil {
		return err
	}

	count, err := h.shop.AddToCart(c.Request().Context(), sessionID(c), h.shop.Catalog().Resolve(item))
	if err != nil {
		return err
	}

	if wantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]int{"count": count})
	}
	if back := sameSiteReferer(c); back != "" {
		return c.Redirect(http.StatusSeeOther, back)
	}
	return advance(c, shop.Browsing, shop.AddItem)
}

// sameSiteReferer returns the path of the referring page, dropping any host
// so the redirect never leaves the site.
func sameSiteReferer(c echo.Context) string {
	ref := c.Request().Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" || u.Path[0] != '/' {
		return ""
	}
	if u.Host != "" && u.Host != c.Request().Host {
		return ""
	}
	back := u.EscapedPath()
	if u.RawQuery != "" {
		back += "?" + u.RawQuery
	}
	return back
}

// GetCart renders the cart table and persists its totals.
func (h *Handler) GetCart(c echo.Context) error {
	view, err := h.shop.CartPage(c.Request().Context(), sessionID(c))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "cart", "Cart", view.Count, view)
}

func (h *Handler) IncrementItem(c echo.Context) error {
	if _, err := h.shop.Increment(c.Request().Context(), sessionID(c), itemID(c)); err != nil {
		return err
	}
	return advance(c, shop.Cart, shop.EditCart)
}

func (h *Handler) DecrementItem(c echo.Context) error {
	if _, err := h.shop.Decrement(c.Request().Context(), sessionID(c), itemID(c)); err != nil {
		return err
	}
	return advance(c, shop.Cart, shop.EditCart)
}

// SetItemQuantity handles direct edits of the quantity input.
func (h *Handler) SetItemQuantity(c echo.Context) error {
	qty := shop.ParseQuantity(c.FormValue("qty"))
	if _, err := h.shop.SetQuantity(c.Request().Context(), sessionID(c), itemID(c), qty); err != nil {
		return err
	}
	return advance(c, shop.Cart, shop.EditCart)
}

func (h *Handler) RemoveItem(c echo.Context) error {
	if _, err := h.shop.Remove(c.Request().Context(), sessionID(c), itemID(c)); err != nil {
		return err
	}
	return advance(c, shop.Cart, shop.EditCart)
}
