package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Madhav-Gupta-28/noemie-shop-go/apperror"
	"github.com/Madhav-Gupta-28/noemie-shop-go/logger"
	"github.com/Madhav-Gupta-28/noemie-shop-go/middleware"
	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/Madhav-Gupta-28/noemie-shop-go/web"
	"github.com/labstack/echo/v4"
)

// Handler serves the storefront pages and the cart API.
type Handler struct {
	shop *shop.Service
}

func New(svc *shop.Service) *Handler {
	return &Handler{shop: svc}
}

func (h *Handler) render(c echo.Context, status int, name, title string, count int, data any) error {
	return c.Render(status, name, web.Page{Title: title, Count: count, Data: data})
}

// advance redirects to the page reached from state on event. from is the
// state of the page the handler serves; the flow is not tracked per session,
// so an undefined pair only logs and stays on that page.
func advance(c echo.Context, from shop.State, on shop.Event) error {
	to, err := shop.Next(from, on)
	if err != nil {
		logger.Warn().Err(err).Msg("unexpected flow transition")
		to = from
	}
	return c.Redirect(http.StatusSeeOther, to.Path())
}

func sessionID(c echo.Context) string {
	return middleware.SessionID(c)
}

func itemID(c echo.Context) string {
	id := c.Param("id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}

func wantsJSON(c echo.Context) bool {
	req := c.Request()
	return strings.HasPrefix(req.URL.Path, "/api/") ||
		strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) ||
		req.Header.Get(echo.HeaderXRequestedWith) == "XMLHttpRequest"
}

// ErrorHandler maps AppErrors and echo HTTP errors to responses: JSON for API
// and XHR clients, plain text otherwise.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := apperror.StatusOf(err)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
	}

	var respErr error
	switch {
	case c.Request().Method == http.MethodHead:
		respErr = c.NoContent(status)
	case wantsJSON(c):
		respErr = c.JSON(status, map[string]string{"error": message})
	default:
		respErr = c.String(status, message)
	}
	if respErr != nil {
		logger.Error().Err(respErr).Msg("failed to write error response")
	}
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
