package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/storely/checkout/internal/catalog"
	"github.com/storely/checkout/internal/checkout"
	"github.com/storely/checkout/internal/logging"
)

type ProductHandler struct {
	Catalog checkout.Catalog
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id := c.Param("id")
	if id == "" {
		l.Warn("get_product_failed", "status", 400, "reason", "empty id")
		return echo.NewHTTPError(http.StatusBadRequest, "product id is required")
	}

	product, err := h.Catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			l.Warn("get_product_failed", "status", 404, "product_id", id)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Product not found"})
		}
		l.Error("get_product_failed", "status", 500, "product_id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch product."})
	}

	return c.JSON(http.StatusOK, product)
}
