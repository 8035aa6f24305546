package paypal

import (
	"fmt"
	"net/http"
	"net/url"
)

// Request is one of the closed set of provider calls. Constructors below are
// the only way to build one; Execute dispatches them all the same way.
type Request struct {
	// Name labels the request in logs and metrics, e.g. "orders.create".
	Name    string
	Method  string
	Path    string
	Body    any
	Headers http.Header

	// tokenRequest marks the token-acquisition calls, which authenticate
	// with Basic credentials instead of an injected bearer token.
	tokenRequest bool

	// form holds url-encoded body values for the token endpoint.
	form url.Values
}

// Prefer asks the provider to return the full resource representation
// instead of the minimal one.
func (r *Request) Prefer(value string) {
	r.Headers.Set("Prefer", value)
}

func newRequest(name, method, path string) *Request {
	return &Request{
		Name:    name,
		Method:  method,
		Path:    path,
		Headers: http.Header{},
	}
}

// NewOrdersCreateRequest creates an order. POST /v2/checkout/orders
func NewOrdersCreateRequest(body any) *Request {
	req := newRequest("orders.create", http.MethodPost, "/v2/checkout/orders")
	req.Body = body
	return req
}

// NewOrdersAuthorizeRequest authorizes payment for an approved order.
// POST /v2/checkout/orders/{id}/authorize
func NewOrdersAuthorizeRequest(orderID string) *Request {
	req := newRequest("orders.authorize", http.MethodPost, fmt.Sprintf("/v2/checkout/orders/%s/authorize", url.PathEscape(orderID)))
	req.Body = struct{}{}
	return req
}

// NewOrdersCaptureRequest captures payment for an approved order.
// POST /v2/checkout/orders/{id}/capture
func NewOrdersCaptureRequest(orderID string) *Request {
	req := newRequest("orders.capture", http.MethodPost, fmt.Sprintf("/v2/checkout/orders/%s/capture", url.PathEscape(orderID)))
	req.Body = struct{}{}
	return req
}

// NewAuthorizationsCaptureRequest captures a previously authorized payment.
// POST /v2/payments/authorizations/{id}/capture
func NewAuthorizationsCaptureRequest(authorizationID string) *Request {
	req := newRequest("authorizations.capture", http.MethodPost, fmt.Sprintf("/v2/payments/authorizations/%s/capture", url.PathEscape(authorizationID)))
	req.Body = struct{}{}
	return req
}

// NewCapturesRefundRequest refunds a captured payment.
// POST /v2/payments/captures/{id}/refund
func NewCapturesRefundRequest(captureID string, body any) *Request {
	req := newRequest("captures.refund", http.MethodPost, fmt.Sprintf("/v2/payments/captures/%s/refund", url.PathEscape(captureID)))
	req.Body = body
	return req
}

// NewAccessTokenRequest exchanges app credentials (or a refresh token) for a
// bearer token. POST /v1/oauth2/token
func NewAccessTokenRequest(env Environment, refreshToken string) *Request {
	req := newRequest("oauth2.token", http.MethodPost, "/v1/oauth2/token")
	req.tokenRequest = true
	req.Headers.Set("Authorization", "Basic "+env.AuthorizationString())

	form := url.Values{}
	if refreshToken != "" {
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", refreshToken)
	} else {
		form.Set("grant_type", "client_credentials")
	}
	req.form = form
	return req
}
