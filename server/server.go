package server

import (
	"github.com/Madhav-Gupta-28/noemie-shop-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/noemie-shop-go/middleware"
	"github.com/Madhav-Gupta-28/noemie-shop-go/metrics"
	"github.com/Madhav-Gupta-28/noemie-shop-go/routes"
	"github.com/Madhav-Gupta-28/noemie-shop-go/shop"
	"github.com/Madhav-Gupta-28/noemie-shop-go/web"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New assembles the echo instance: renderer, middleware chain and routes.
func New(svc *shop.Service, m *metrics.Metrics, session customMiddleware.SessionConfig) (*echo.Echo, error) {
	renderer, err := web.NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handlers.ErrorHandler

	e.Use(customMiddleware.RequestLogger(m))
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(customMiddleware.Session(session))

	routes.SetupRoutes(e, handlers.New(svc), m)
	return e, nil
}
