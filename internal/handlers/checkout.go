package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/storely/checkout/internal/checkout"
	"github.com/storely/checkout/internal/logging"
	"github.com/storely/checkout/internal/models"
)

// EventPublisher emits checkout lifecycle events to the event stream.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event interface{}) error
}

type CheckoutHandler struct {
	Service  *checkout.Service
	Producer EventPublisher
}

func (h *CheckoutHandler) publish(c echo.Context, key string, event map[string]any) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "checkout_events", key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

// orderSummary pulls the id and status out of a gateway body for event
// payloads. The body itself still goes to the client untouched.
func orderSummary(body json.RawMessage) (id, status string) {
	var parsed struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &parsed)
	return parsed.ID, parsed.Status
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.create_order")

	var req struct {
		Cart []models.CartLine `json:"cart"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	resp, err := h.Service.CreateOrder(ctx, req.Cart)
	if err != nil {
		l.Error("create_order_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create order."})
	}

	orderID, status := orderSummary(resp.JSONResponse)
	h.publish(c, orderID, map[string]any{
		"type":    "order_created",
		"orderID": orderID,
		"status":  status,
	})

	l.Info("create_order_success", "order_id", orderID, "gateway_status", resp.HTTPStatusCode)
	return c.JSONBlob(resp.HTTPStatusCode, resp.JSONResponse)
}

func (h *CheckoutHandler) CaptureOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "checkout.capture_order")

	orderID := c.Param("orderID")

	resp, err := h.Service.CaptureOrder(ctx, orderID)
	if err != nil {
		l.Error("capture_order_failed", "status", 500, "order_id", orderID, "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to capture order."})
	}

	_, status := orderSummary(resp.JSONResponse)
	h.publish(c, orderID, map[string]any{
		"type":    "order_captured",
		"orderID": orderID,
		"status":  status,
	})

	l.Info("capture_order_success", "order_id", orderID, "gateway_status", resp.HTTPStatusCode)
	return c.JSONBlob(resp.HTTPStatusCode, resp.JSONResponse)
}
