package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/storely/checkout/internal/logging"
	"github.com/storely/checkout/internal/models"
	"github.com/storely/checkout/internal/paypal"
)

// Catalog resolves a product id to its authoritative snapshot.
type Catalog interface {
	GetProduct(ctx context.Context, id string) (*models.Product, error)
}

// Gateway is the payment gateway boundary: create an order, capture a
// previously created one. Structured gateway rejections come back as
// *paypal.APIError; anything else is a transport fault.
type Gateway interface {
	CreateOrder(ctx context.Context, req models.OrderRequest) (*models.GatewayOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*models.GatewayCapture, error)
}

// Service is the order lifecycle orchestrator. It is stateless per call;
// the gateway owns the order state machine.
type Service struct {
	Catalog Catalog
	Gateway Gateway
}

func NewService(catalog Catalog, gateway Gateway) *Service {
	return &Service{Catalog: catalog, Gateway: gateway}
}

// CreateOrder prices the cart against the catalog, builds the gateway
// payload, and creates the order. The gateway's body and status code are
// passed through untouched.
func (s *Service) CreateOrder(ctx context.Context, cart []models.CartLine) (*models.OrderResponse, error) {
	lines, err := s.resolvePrices(ctx, cart)
	if err != nil {
		return nil, fmt.Errorf("resolve cart prices: %w", err)
	}

	order, err := s.Gateway.CreateOrder(ctx, buildOrderRequest(lines))
	if err != nil {
		return nil, s.translateGatewayError(ctx, err)
	}

	return &models.OrderResponse{
		JSONResponse:   order.Body,
		HTTPStatusCode: order.StatusCode,
	}, nil
}

// CaptureOrder finalizes the funds transfer for a created order. The id
// is not validated beyond being non-empty; the gateway is the only guard
// on order state.
func (s *Service) CaptureOrder(ctx context.Context, orderID string) (*models.OrderResponse, error) {
	if orderID == "" {
		return nil, ErrEmptyOrderID
	}

	capture, err := s.Gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, s.translateGatewayError(ctx, err)
	}

	return &models.OrderResponse{
		JSONResponse:   capture.Body,
		HTTPStatusCode: capture.StatusCode,
	}, nil
}

// translateGatewayError hides the gateway's own error schema behind a
// flat message. Transport faults pass through unchanged.
func (s *Service) translateGatewayError(ctx context.Context, err error) error {
	var apiErr *paypal.APIError
	if errors.As(err, &apiErr) {
		logging.FromContext(ctx).Error("gateway_api_error",
			"status", apiErr.StatusCode,
			"name", apiErr.Name,
			"body", string(apiErr.Body),
		)
		return fmt.Errorf("paypal api error: %s", apiErr.Message)
	}
	return err
}
