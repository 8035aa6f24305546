package application_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/craftcms/commerce-paypal-checkout/internal/application"
	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResponse is a minimal RequestResponse for service-level tests.
type stubResponse struct {
	reference  string
	successful bool
	redirect   bool
}

func (r *stubResponse) IsSuccessful() bool { return r.successful }
func (r *stubResponse) IsProcessing() bool { return false }
func (r *stubResponse) IsRedirect() bool { return r.redirect }
func (r *stubResponse) GetRedirectMethod() string { return "" }
func (r *stubResponse) GetRedirectData() map[string]string { return map[string]string{} }
func (r *stubResponse) GetRedirectURL() string { return r.reference }
func (r *stubResponse) GetTransactionReference() string { return r.reference }
func (r *stubResponse) GetCode() string { return "201" }
func (r *stubResponse) GetData() any {
	return map[string]string{"id": r.reference}
}
func (r *stubResponse) GetMessage() string { return "" }

// stubGateway records which operation was invoked.
type stubGateway struct {
	lastOp       string
	lastResponse application.RequestResponse
	err          error
}

func (g *stubGateway) respond(op, reference string) (application.RequestResponse, error) {
	g.lastOp = op
	if g.err != nil {
		return nil, g.err
	}
	g.lastResponse = &stubResponse{reference: reference, redirect: true}
	return g.lastResponse, nil
}

func (g *stubGateway) Purchase(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (application.RequestResponse, error) {
	return g.respond("purchase", "5O190127TN364715T")
}

func (g *stubGateway) Authorize(ctx context.Context, transaction *domain.Transaction, order *domain.Order, form *domain.PaymentForm) (application.RequestResponse, error) {
	return g.respond("authorize", "5O190127TN364715T")
}

func (g *stubGateway) CompleteAuthorize(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	return g.respond("completeAuthorize", transaction.Reference)
}

func (g *stubGateway) CompletePurchase(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	return g.respond("completePurchase", transaction.Reference)
}

func (g *stubGateway) Capture(ctx context.Context, transaction *domain.Transaction, reference string) (application.RequestResponse, error) {
	return g.respond("capture", reference)
}

func (g *stubGateway) Refund(ctx context.Context, transaction *domain.Transaction) (application.RequestResponse, error) {
	return g.respond("refund", transaction.Reference)
}

func (g *stubGateway) CreatePaymentSource(ctx context.Context, form *domain.PaymentForm, userID string) error {
	return application.ErrPaymentSourcesNotSupported
}

func (g *stubGateway) DeletePaymentSource(ctx context.Context, token string) error {
	return application.ErrPaymentSourcesNotSupported
}

func (g *stubGateway) SupportsAuthorize() bool { return true }
func (g *stubGateway) SupportsCapture() bool { return true }
func (g *stubGateway) SupportsCompleteAuthorize() bool { return true }
func (g *stubGateway) SupportsCompletePurchase() bool { return true }
func (g *stubGateway) SupportsPurchase() bool { return true }
func (g *stubGateway) SupportsRefund() bool { return true }
func (g *stubGateway) SupportsPartialRefund() bool { return true }
func (g *stubGateway) SupportsPaymentSources() bool { return false }
func (g *stubGateway) SupportsWebhooks() bool { return false }

func serviceOrder() *domain.Order {
	return &domain.Order{
		Number:             "ORDER-1001",
		Currency:           "USD",
		Total:              decimal.RequireFromString("100.00"),
		OutstandingBalance: decimal.RequireFromString("100.00"),
	}
}

func newService(gw *stubGateway, paymentType string) (*application.CheckoutService, *memory.TransactionRepository) {
	repo := memory.NewTransactionRepository()
	service := application.NewCheckoutService(gw, repo, paymentType, slog.New(slog.DiscardHandler))
	return service, repo
}

func TestStartPaymentPurchase(t *testing.T) {
	gw := &stubGateway{}
	service, repo := newService(gw, config.PaymentTypePurchase)

	result, err := service.StartPayment(context.Background(), application.StartPaymentCommand{
		Order: serviceOrder(),
		Form:  &domain.PaymentForm{Currency: "USD"},
	})
	require.NoError(t, err)

	assert.Equal(t, "purchase", gw.lastOp)
	assert.Equal(t, domain.TransactionTypePurchase, result.Transaction.Type)
	assert.Equal(t, "5O190127TN364715T", result.Transaction.Reference)
	assert.NotEmpty(t, result.Transaction.ID)
	assert.NotEmpty(t, result.Transaction.Hash)
	assert.JSONEq(t, `{"id":"5O190127TN364715T"}`, string(result.Transaction.Response))

	stored, err := repo.FindByHash(context.Background(), result.Transaction.Hash)
	require.NoError(t, err)
	assert.Equal(t, result.Transaction.ID, stored.ID)
	assert.Equal(t, "5O190127TN364715T", stored.Reference)
}

func TestStartPaymentAuthorize(t *testing.T) {
	gw := &stubGateway{}
	service, _ := newService(gw, config.PaymentTypeAuthorize)

	result, err := service.StartPayment(context.Background(), application.StartPaymentCommand{
		Order: serviceOrder(),
		Form:  &domain.PaymentForm{},
	})
	require.NoError(t, err)

	assert.Equal(t, "authorize", gw.lastOp)
	assert.Equal(t, domain.TransactionTypeAuthorize, result.Transaction.Type)
}

func TestStartPaymentGatewayFailure(t *testing.T) {
	gw := &stubGateway{err: application.NewPaymentError("declined", nil)}
	service, _ := newService(gw, config.PaymentTypePurchase)

	_, err := service.StartPayment(context.Background(), application.StartPaymentCommand{
		Order: serviceOrder(),
		Form:  &domain.PaymentForm{},
	})
	require.Error(t, err)

	_, ok := application.IsPaymentError(err)
	assert.True(t, ok)
}

func TestCompletePaymentPurchase(t *testing.T) {
	gw := &stubGateway{}
	service, _ := newService(gw, config.PaymentTypePurchase)

	started, err := service.StartPayment(context.Background(), application.StartPaymentCommand{
		Order: serviceOrder(),
		Form:  &domain.PaymentForm{},
	})
	require.NoError(t, err)

	completed, err := service.CompletePayment(context.Background(), started.Transaction.Hash)
	require.NoError(t, err)

	assert.Equal(t, "completePurchase", gw.lastOp)
	require.NotNil(t, completed.Transaction.Parent())
	assert.Equal(t, started.Transaction.ID, completed.Transaction.Parent().ID)
	assert.Equal(t, started.Transaction.PaymentAmount, completed.Transaction.PaymentAmount)
	assert.NotEqual(t, started.Transaction.Hash, completed.Transaction.Hash)
}

func TestCompletePaymentAuthorize(t *testing.T) {
	gw := &stubGateway{}
	service, _ := newService(gw, config.PaymentTypeAuthorize)

	started, err := service.StartPayment(context.Background(), application.StartPaymentCommand{
		Order: serviceOrder(),
		Form:  &domain.PaymentForm{},
	})
	require.NoError(t, err)

	_, err = service.CompletePayment(context.Background(), started.Transaction.Hash)
	require.NoError(t, err)

	assert.Equal(t, "completeAuthorize", gw.lastOp)
}

func TestCompletePaymentUnknownHash(t *testing.T) {
	service, _ := newService(&stubGateway{}, config.PaymentTypePurchase)

	_, err := service.CompletePayment(context.Background(), "no-such-hash")
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeTransactionNotFound))
}
