package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storely/checkout/internal/handlers"
)

type Deps struct {
	ProductHandler  *handlers.ProductHandler
	CheckoutHandler *handlers.CheckoutHandler
	SearchHandler   *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Server online"})
	})
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	api := e.Group("/api")

	api.GET("/products/search", d.SearchHandler.Search)
	api.GET("/products/:id", d.ProductHandler.GetProduct)

	api.POST("/orders", d.CheckoutHandler.CreateOrder)
	api.POST("/orders/:orderID/capture", d.CheckoutHandler.CaptureOrder)
}
