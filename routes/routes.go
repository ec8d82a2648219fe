package routes

import (
	"github.com/Madhav-Gupta-28/noemie-shop-go/handlers"
	"github.com/Madhav-Gupta-28/noemie-shop-go/metrics"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(e *echo.Echo, h *handlers.Handler, m *metrics.Metrics) {
	// Pages
	e.GET("/", h.GetProducts)
	e.GET("/products", h.GetProducts)
	e.GET("/cart", h.GetCart)
	e.GET("/checkout", h.GetCheckout)
	e.GET("/payment", h.GetPayment)
	e.GET("/confirmation", h.GetConfirmation)

	// Form posts
	e.POST("/cart/items", h.AddToCart)
	e.POST("/cart/items/:id/increment", h.IncrementItem)
	e.POST("/cart/items/:id/decrement", h.DecrementItem)
	e.POST("/cart/items/:id/quantity", h.SetItemQuantity)
	e.POST("/cart/items/:id/remove", h.RemoveItem)
	e.POST("/checkout/customer", h.SubmitCustomer)
	e.POST("/payment", h.SubmitPayment)

	// JSON API
	api := e.Group("/api")
	api.GET("/cart", h.GetCartAPI)
	api.POST("/cart", h.AddToCartAPI)
	api.PUT("/cart/quantity", h.UpdateCartItemQuantity)
	api.DELETE("/cart/:id", h.RemoveFromCart)
	api.GET("/order", h.GetOrder)

	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
}
