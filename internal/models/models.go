package models

import "encoding/json"

// UnitAmount is a currency/amount pair. Value is a decimal kept as a
// string so no floating-point rounding ever touches money.
type UnitAmount struct {
	CurrencyCode string `bson:"currency_code" json:"currencyCode"`
	Value        string `bson:"value"         json:"value"`
}

// Product is a read-only snapshot from the catalog store. The checkout
// core never mutates it.
type Product struct {
	ID            string     `bson:"_id"                      json:"id"`
	Name          string     `bson:"name"                     json:"name"`
	Description   string     `bson:"description"              json:"description"`
	ImageURLs     []string   `bson:"image_urls,omitempty"     json:"imageUrls,omitempty"`
	UnitAmount    UnitAmount `bson:"unit_amount"              json:"unitAmount"`
	OriginalPrice string     `bson:"original_price,omitempty" json:"originalPrice,omitempty"`
}

// CartLine is a client-submitted cart entry. Any price the client sends
// along is untrusted and must never reach the gateway.
type CartLine struct {
	ProductID  string      `json:"id"`
	Quantity   int         `json:"quantity"`
	UnitAmount *UnitAmount `json:"unitAmount,omitempty"`
}

// ResolvedLine is a cart entry whose price has been replaced with the
// catalog's authoritative unit amount.
type ResolvedLine struct {
	CurrencyCode string
	Value        string
}

// OrderRequest is the gateway order creation payload, one purchase unit
// per resolved line. Wire tags follow the PayPal v2 orders schema.
type OrderRequest struct {
	Intent        string         `json:"intent"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
}

type PurchaseUnit struct {
	Amount Amount `json:"amount"`
}

type Amount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

// IntentCapture instructs the gateway to capture funds immediately on
// buyer approval.
const IntentCapture = "CAPTURE"

// GatewayOrder is the gateway's answer to an order creation. The body is
// opaque to the core and handed back to the client verbatim.
type GatewayOrder struct {
	ID         string
	Status     string
	StatusCode int
	Body       json.RawMessage
}

// GatewayCapture is the gateway's answer to a capture call.
type GatewayCapture struct {
	ID         string
	Status     string
	StatusCode int
	Body       json.RawMessage
}

// OrderResponse is the uniform envelope the orchestrator hands to the
// transport layer for both creation and capture.
type OrderResponse struct {
	JSONResponse   json.RawMessage
	HTTPStatusCode int
}
