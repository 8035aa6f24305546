// Package gateway implements the PayPal Checkout payment gateway: it
// translates host orders and transactions into provider requests, executes
// them, and interprets the results for the order-processing engine.
package gateway

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/paypal"
)

// ProviderClient executes provider requests. *paypal.Client implements it;
// tests substitute a fake.
type ProviderClient interface {
	Execute(ctx context.Context, req *paypal.Request) (*paypal.Response, error)
}

// Gateway is one configured PayPal Checkout gateway instance.
type Gateway struct {
	settings config.GatewaySettings
	client   ProviderClient
	logger   *slog.Logger
}

var _ application.PaymentGateway = (*Gateway)(nil)

func New(settings config.GatewaySettings, client ProviderClient, logger *slog.Logger) *Gateway {
	return &Gateway{
		settings: settings,
		client:   client,
		logger:   logger,
	}
}

// Purchase creates a provider order for the transaction. The customer then
// approves it offsite; the returned response is always a redirect until
// CompletePurchase or CompleteAuthorize finalizes the payment.
func (g *Gateway) Purchase(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (application.RequestResponse, error) {
	body := g.buildCreateOrderRequest(order, transaction)

	req := paypal.NewOrdersCreateRequest(body)
	req.Prefer("return=representation")

	resp, err := g.client.Execute(ctx, req)
	if err != nil {
		return nil, application.NewPaymentError(errorMessage(err), err)
	}

	return NewCheckoutResponse(resp), nil
}

// Authorize is the same request as Purchase; only the intent differs, and
// that was set from the gateway settings when the request body was built.
func (g *Gateway) Authorize(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (application.RequestResponse, error) {
	return g.Purchase(ctx, transaction, order, form)
}

// CompleteAuthorize finalizes the authorization for an approved offsite
// order, using the transaction reference as the provider order id.
func (g *Gateway) CompleteAuthorize(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	req := paypal.NewOrdersAuthorizeRequest(transaction.Reference)
	req.Prefer("return=representation")

	resp, err := g.client.Execute(ctx, req)
	if err != nil {
		return nil, application.NewPaymentError(errorMessage(err), err)
	}

	return NewCheckoutResponse(resp), nil
}

// CompletePurchase captures an approved offsite order. A transport failure is
// converted into an error-status response carrying the transaction's own
// reference, never raised: completion must always leave the host with a
// result it can persist and branch on.
func (g *Gateway) CompletePurchase(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	req := paypal.NewOrdersCaptureRequest(transaction.Reference)

	resp, err := g.client.Execute(ctx, req)
	if err != nil {
		g.logger.Error("order capture failed",
			"transaction", transaction.ID,
			"reference", transaction.Reference,
			"error", err,
		)
		return NewCheckoutResponse(failureResponse(transaction.Reference, err)), nil
	}

	return NewCheckoutResponse(resp), nil
}

// Capture captures a previously authorized payment. The provider
// authorization id is read from the parent authorize transaction's stored
// response; without it the capture cannot succeed, so its absence is logged
// loudly rather than papered over.
func (g *Gateway) Capture(ctx context.Context, transaction *domain.Transaction, reference string) (application.RequestResponse, error) {
	parent := transaction.Parent()
	if parent == nil {
		err := domain.NewMissingParentError(transaction.ID)
		g.logger.Error("cannot retrieve parent transaction", "transaction", transaction.ID)
		return nil, application.NewPaymentError(err.Message, err)
	}

	authorizationID := ""
	var parentResponse paypal.Response
	if err := json.Unmarshal(parent.Response, &parentResponse); err != nil {
		g.logger.Error("cannot parse parent transaction response", "transaction", parent.ID, "error", err)
	} else {
		authorizationID = parentResponse.Result.AuthorizationID()
	}

	if authorizationID == "" {
		g.logger.Error("an authorization id is required to capture", "transaction", transaction.ID)
	}

	req := paypal.NewAuthorizationsCaptureRequest(authorizationID)
	req.Prefer("return=representation")

	resp, err := g.client.Execute(ctx, req)
	if err != nil {
		return nil, application.NewPaymentError(errorMessage(err), err)
	}

	return NewCheckoutResponse(resp), nil
}

// Refund refunds a captured payment. The capture id lives at a different
// path in the parent's stored response depending on whether the parent was a
// capture transaction or an authorize/purchase; both flows are supported.
// Failures degrade to a refund response wrapping the message so the host
// always gets a persistable result.
func (g *Gateway) Refund(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	parent := transaction.Parent()
	if parent == nil {
		g.logger.Error("cannot retrieve parent transaction", "transaction", transaction.ID)
		return NewRefundResponse(&paypal.Response{
			Message: domain.NewMissingParentError(transaction.ID).Message,
		}), nil
	}

	captureID := ""
	var parentResponse paypal.Response
	if err := json.Unmarshal(parent.Response, &parentResponse); err != nil {
		g.logger.Error("cannot parse parent transaction response", "transaction", parent.ID, "error", err)
	} else if parent.Type == domain.TransactionTypeCapture {
		captureID = parentResponse.Result.ID
	} else {
		captureID = parentResponse.Result.CaptureID()
	}

	body := paypal.RefundAmount{
		Amount: paypal.Money{
			CurrencyCode: transaction.PaymentCurrency,
			Value:        domain.FormatAmount(transaction.PaymentAmount, transaction.PaymentCurrency),
		},
	}

	req := paypal.NewCapturesRefundRequest(captureID, body)
	req.Prefer("return=representation")

	resp, err := g.client.Execute(ctx, req)
	if err != nil {
		g.logger.Error("refund failed", "transaction", transaction.ID, "error", err)
		return NewRefundResponse(&paypal.Response{Message: errorMessage(err)}), nil
	}

	return NewRefundResponse(resp), nil
}

// CreatePaymentSource is not supported by this gateway.
func (g *Gateway) CreatePaymentSource(ctx context.Context, form *domain.PaymentForm, userID string) error {
	return application.ErrPaymentSourcesNotSupported
}

// DeletePaymentSource is not supported by this gateway.
func (g *Gateway) DeletePaymentSource(ctx context.Context, token string) error {
	return application.ErrPaymentSourcesNotSupported
}

func (g *Gateway) SupportsAuthorize() bool { return true }
func (g *Gateway) SupportsCapture() bool { return true }
func (g *Gateway) SupportsCompleteAuthorize() bool { return true }
func (g *Gateway) SupportsCompletePurchase() bool { return true }
func (g *Gateway) SupportsPurchase() bool { return true }
func (g *Gateway) SupportsRefund() bool { return true }
func (g *Gateway) SupportsPartialRefund() bool { return true }
func (g *Gateway) SupportsPaymentSources() bool { return false }
func (g *Gateway) SupportsWebhooks() bool { return false }

// failureResponse synthesizes an error-status response for a call that
// failed in transport, preserving the reference the host already holds.
func failureResponse(reference string, err error) *paypal.Response {
	message := errorMessage(err)
	resp := &paypal.Response{
		Result: paypal.OrderResult{
			ID:      reference,
			Status:  errorStatus,
			Message: message,
		},
		Message: message,
	}
	if apiErr, ok := paypal.IsAPIError(err); ok {
		resp.StatusCode = apiErr.StatusCode
	}
	return resp
}

// errorMessage extracts the human-readable message from a provider failure,
// preferring the structured decline message over the wrapped transport error.
func errorMessage(err error) string {
	if apiErr, ok := paypal.IsAPIError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}
