package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/storely/checkout/internal/logging"
	"github.com/storely/checkout/internal/models"
)

// APIError is a structured error body returned by the gateway itself, as
// opposed to a transport failure reaching it.
type APIError struct {
	StatusCode int
	Name       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("paypal: %s (%s, http %d)", e.Message, e.Name, e.StatusCode)
	}
	return fmt.Sprintf("paypal: http %d", e.StatusCode)
}

// Client speaks the PayPal v2 checkout orders API over OAuth
// client-credential auth. One round-trip per call, no retries.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(ctx context.Context, clientID, clientSecret, baseURL string) *Client {
	cc := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     baseURL + "/v1/oauth2/token",
	}
	return &Client{
		baseURL: baseURL,
		http:    cc.Client(ctx),
	}
}

func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.GatewayOrder, error) {
	status, body, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", req)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("paypal: unexpected create order response: %w", err)
	}

	return &models.GatewayOrder{
		ID:         parsed.ID,
		Status:     parsed.Status,
		StatusCode: status,
		Body:       body,
	}, nil
}

func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*models.GatewayCapture, error) {
	path := "/v2/checkout/orders/" + orderID + "/capture"
	status, body, err := c.do(ctx, http.MethodPost, path, nil)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("paypal: unexpected capture response: %w", err)
	}

	return &models.GatewayCapture{
		ID:         parsed.ID,
		Status:     parsed.Status,
		StatusCode: status,
		Body:       body,
	}, nil
}

// do performs one request and returns the raw response. Gateway error
// bodies become *APIError; everything else is a transport error.
func (c *Client) do(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	l := logging.FromContext(ctx).With("component", "paypal")

	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return 0, nil, fmt.Errorf("paypal: encode request: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return 0, nil, fmt.Errorf("paypal: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("paypal: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("paypal: read response: %w", err)
	}

	l.Debug("gateway_call", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: body}
		var parsed struct {
			Name    string `json:"name"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &parsed); err == nil {
			apiErr.Name = parsed.Name
			apiErr.Message = parsed.Message
		}
		return resp.StatusCode, body, apiErr
	}

	return resp.StatusCode, body, nil
}
