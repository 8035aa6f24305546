package paypal

import "encoding/json"

// Response is the canonical shape every provider call is normalized into
// immediately after transport. Result carries the decoded payload for calls
// that reached the provider; Message is set instead when the failure happened
// before a structured payload existed. The JSON shape (statusCode + result)
// is what the host persists on the transaction and what follow-up operations
// parse provider ids back out of.
type Response struct {
	StatusCode int             `json:"statusCode"`
	Result     OrderResult     `json:"result"`
	Raw        json.RawMessage `json:"-"`
	Message    string          `json:"message,omitempty"`
}

// OrderResult is the subset of the provider's order/capture/refund payloads
// the gateway reads. Unknown fields survive in Response.Raw.
type OrderResult struct {
	ID            string               `json:"id,omitempty"`
	Status        string               `json:"status,omitempty"`
	Message       string               `json:"message,omitempty"`
	PurchaseUnits []PurchaseUnitResult `json:"purchase_units,omitempty"`
}

type PurchaseUnitResult struct {
	ReferenceID string         `json:"reference_id,omitempty"`
	Payments    PaymentsResult `json:"payments,omitempty"`
}

// PaymentsResult holds the nested fund-movement sub-resources of an order.
// Each capture or authorization carries its own status, which can lag behind
// the order status (e.g. a PENDING capture inside a COMPLETED order).
type PaymentsResult struct {
	Captures       []CaptureResult       `json:"captures,omitempty"`
	Authorizations []AuthorizationResult `json:"authorizations,omitempty"`
}

type CaptureResult struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

type AuthorizationResult struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

// AuthorizationID returns the id of the first authorization on the first
// purchase unit, or "" when none exists.
func (r *OrderResult) AuthorizationID() string {
	if len(r.PurchaseUnits) == 0 {
		return ""
	}
	auths := r.PurchaseUnits[0].Payments.Authorizations
	if len(auths) == 0 {
		return ""
	}
	return auths[0].ID
}

// CaptureID returns the id of the first capture on the first purchase unit,
// or "" when none exists.
func (r *OrderResult) CaptureID() string {
	if len(r.PurchaseUnits) == 0 {
		return ""
	}
	captures := r.PurchaseUnits[0].Payments.Captures
	if len(captures) == 0 {
		return ""
	}
	return captures[0].ID
}

// RefundAmount is the body of a captures-refund request.
type RefundAmount struct {
	Amount Money `json:"amount"`
}

// Money is the provider's {currency_code, value} pair. Value is always a
// decimal string, never a float.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type accessTokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type errorResult struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
	Details []struct {
		Issue       string `json:"issue"`
		Description string `json:"description"`
	} `json:"details"`
}
