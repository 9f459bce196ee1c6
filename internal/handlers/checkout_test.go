package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storely/checkout/internal/checkout"
	"github.com/storely/checkout/internal/models"
	"github.com/storely/checkout/internal/paypal"
)

func newCheckoutHandler(cat *stubCatalog, gw *stubGateway) (*CheckoutHandler, *recordingProducer) {
	prod := &recordingProducer{}
	h := &CheckoutHandler{
		Service:  checkout.NewService(cat, gw),
		Producer: prod,
	}
	return h, prod
}

func TestCreateOrderPassesGatewayResponseThrough(t *testing.T) {
	cat := &stubCatalog{products: map[string]models.Product{
		"A": {ID: "A", UnitAmount: models.UnitAmount{CurrencyCode: "USD", Value: "19.99"}},
	}}
	gw := &stubGateway{createResult: &models.GatewayOrder{
		ID:         "ORDER123",
		Status:     "CREATED",
		StatusCode: http.StatusCreated,
		Body:       json.RawMessage(`{"id":"ORDER123","status":"CREATED"}`),
	}}
	h, prod := newCheckoutHandler(cat, gw)

	body := map[string]any{
		"cart": []map[string]any{
			{"id": "A", "quantity": 1, "unitAmount": map[string]string{"currencyCode": "USD", "value": "0.01"}},
		},
	}
	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", body)

	require.NoError(t, h.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"id":"ORDER123","status":"CREATED"}`, rec.Body.String())

	require.Len(t, prod.events, 1)
	require.Equal(t, "order_created", prod.events[0]["type"])
	require.Equal(t, "ORDER123", prod.events[0]["orderID"])
}

func TestCreateOrderMissingProductReturns500(t *testing.T) {
	cat := &stubCatalog{products: map[string]models.Product{}}
	gw := &stubGateway{}
	h, prod := newCheckoutHandler(cat, gw)

	body := map[string]any{"cart": []map[string]any{{"id": "missing", "quantity": 1}}}
	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", body)

	require.NoError(t, h.CreateOrder(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to create order."}`, rec.Body.String())
	require.Zero(t, gw.createCalls)
	require.Empty(t, prod.events)
}

func TestCreateOrderGatewayErrorBodyNotLeaked(t *testing.T) {
	cat := &stubCatalog{products: map[string]models.Product{
		"A": {ID: "A", UnitAmount: models.UnitAmount{CurrencyCode: "USD", Value: "19.99"}},
	}}
	gw := &stubGateway{createErr: &paypal.APIError{
		StatusCode: 422,
		Name:       "UNPROCESSABLE_ENTITY",
		Message:    "The requested action could not be performed.",
		Body:       []byte(`{"name":"UNPROCESSABLE_ENTITY","details":[{"issue":"CURRENCY_NOT_SUPPORTED"}]}`),
	}}
	h, _ := newCheckoutHandler(cat, gw)

	body := map[string]any{"cart": []map[string]any{{"id": "A", "quantity": 1}}}
	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders", body)

	require.NoError(t, h.CreateOrder(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to create order."}`, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "CURRENCY_NOT_SUPPORTED")
	require.NotContains(t, rec.Body.String(), "UNPROCESSABLE_ENTITY")
}

func TestCaptureOrderPassesGatewayResponseThrough(t *testing.T) {
	gw := &stubGateway{captureResult: &models.GatewayCapture{
		ID:         "ORDER123",
		Status:     "COMPLETED",
		StatusCode: http.StatusCreated,
		Body:       json.RawMessage(`{"status":"COMPLETED"}`),
	}}
	h, prod := newCheckoutHandler(&stubCatalog{}, gw)

	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders/ORDER123/capture", nil)
	c.SetParamNames("orderID")
	c.SetParamValues("ORDER123")

	require.NoError(t, h.CaptureOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{"status":"COMPLETED"}`, rec.Body.String())

	require.Len(t, prod.events, 1)
	require.Equal(t, "order_captured", prod.events[0]["type"])
	require.Equal(t, "ORDER123", prod.events[0]["orderID"])
}

func TestCaptureOrderGatewayFailureReturns500(t *testing.T) {
	gw := &stubGateway{captureErr: &paypal.APIError{
		StatusCode: 404,
		Name:       "RESOURCE_NOT_FOUND",
		Message:    "The specified resource does not exist.",
	}}
	h, prod := newCheckoutHandler(&stubCatalog{}, gw)

	rec, c := doJSONRequest(t, http.MethodPost, "/api/orders/NOPE/capture", nil)
	c.SetParamNames("orderID")
	c.SetParamValues("NOPE")

	require.NoError(t, h.CaptureOrder(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"Failed to capture order."}`, rec.Body.String())
	require.Empty(t, prod.events)
}
