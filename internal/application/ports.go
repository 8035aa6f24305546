// Package application defines the contracts between the host order-processing
// engine and the gateway, and the error taxonomy shared across operations.
package application

import (
	"context"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
)

// RequestResponse is what every gateway operation hands back to the host.
// The host persists the raw data on the transaction and branches on the
// status accessors; it never inspects provider payloads directly.
type RequestResponse interface {
	IsSuccessful() bool
	IsProcessing() bool
	IsRedirect() bool
	GetRedirectMethod() string
	GetRedirectData() map[string]string
	GetRedirectURL() string
	GetTransactionReference() string
	GetCode() string
	GetData() any
	GetMessage() string
}

// PaymentGateway is the capability contract the host engine depends on.
type PaymentGateway interface {
	Purchase(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (RequestResponse, error)
	Authorize(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (RequestResponse, error)
	CompleteAuthorize(ctx context.Context, transaction *domain.Transaction) (RequestResponse, error)
	CompletePurchase(ctx context.Context, transaction *domain.Transaction) (RequestResponse, error)
	Capture(ctx context.Context, transaction *domain.Transaction, reference string) (RequestResponse, error)
	Refund(ctx context.Context, transaction *domain.Transaction) (RequestResponse, error)

	CreatePaymentSource(ctx context.Context, form *domain.PaymentForm, userID string) error
	DeletePaymentSource(ctx context.Context, token string) error

	SupportsAuthorize() bool
	SupportsCapture() bool
	SupportsCompleteAuthorize() bool
	SupportsCompletePurchase() bool
	SupportsPurchase() bool
	SupportsRefund() bool
	SupportsPartialRefund() bool
	SupportsPaymentSources() bool
	SupportsWebhooks() bool
}

// TransactionRepository is the port for the host-side transaction store.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	FindByHash(ctx context.Context, hash string) (*domain.Transaction, error)
	AttachResponse(ctx context.Context, id string, reference string, response []byte) error
}
