package application

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/craftcms/commerce-paypal-checkout/internal/config"
	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence"
	"github.com/google/uuid"
)

// CheckoutService drives a checkout through the gateway: it creates the
// transaction rows the gateway operates on, invokes the matching gateway
// operation and stores the raw provider response back on the transaction so
// follow-up calls can read provider ids out of it.
type CheckoutService struct {
	gateway      PaymentGateway
	transactions TransactionRepository
	paymentType  string
	logger       *slog.Logger
}

func NewCheckoutService(
	gateway PaymentGateway,
	transactions TransactionRepository,
	paymentType string,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		gateway:      gateway,
		transactions: transactions,
		paymentType:  paymentType,
		logger:       logger,
	}
}

// StartPaymentCommand carries everything needed to open a new checkout.
type StartPaymentCommand struct {
	Order *domain.Order
	Form  *domain.PaymentForm
}

// PaymentResult pairs a transaction with the gateway response it produced.
type PaymentResult struct {
	Transaction *domain.Transaction
	Response    RequestResponse
}

// StartPayment creates a provider order for the given commerce order. Whether
// it authorizes or captures follows the configured payment type.
func (s *CheckoutService) StartPayment(ctx context.Context, cmd StartPaymentCommand) (*PaymentResult, error) {
	transactionType := domain.TransactionTypePurchase
	if s.paymentType == config.PaymentTypeAuthorize {
		transactionType = domain.TransactionTypeAuthorize
	}

	transaction := s.newTransaction(transactionType, cmd.Order.Total, cmd.Order.Currency)
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}

	var (
		response RequestResponse
		err      error
	)
	if transactionType == domain.TransactionTypeAuthorize {
		response, err = s.gateway.Authorize(ctx, transaction, cmd.Order, cmd.Form)
	} else {
		response, err = s.gateway.Purchase(ctx, transaction, cmd.Order, cmd.Form)
	}
	if err != nil {
		return nil, err
	}

	if err := s.storeResponse(ctx, transaction, response); err != nil {
		return nil, err
	}

	s.logger.Info("payment started",
		"transaction_id", transaction.ID,
		"transaction_hash", transaction.Hash,
		"type", transaction.Type,
		"reference", transaction.Reference,
	)

	return &PaymentResult{Transaction: transaction, Response: response}, nil
}

// CompletePayment finishes the checkout the customer approved. It looks up
// the originating transaction by hash, records a follow-up transaction of the
// same amount and runs the completion call matching the original type.
func (s *CheckoutService) CompletePayment(ctx context.Context, hash string) (*PaymentResult, error) {
	parent, err := s.transactions.FindByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, persistence.ErrTransactionNotFound) {
			return nil, domain.NewTransactionNotFoundError(hash)
		}
		return nil, err
	}

	transaction := s.newTransaction(parent.Type, parent.PaymentAmount, parent.PaymentCurrency)
	transaction.Reference = parent.Reference
	transaction.SetParent(parent)
	if err := s.transactions.Create(ctx, transaction); err != nil {
		return nil, err
	}

	var response RequestResponse
	if parent.Type == domain.TransactionTypeAuthorize {
		response, err = s.gateway.CompleteAuthorize(ctx, transaction)
	} else {
		response, err = s.gateway.CompletePurchase(ctx, transaction)
	}
	if err != nil {
		return nil, err
	}

	if err := s.storeResponse(ctx, transaction, response); err != nil {
		return nil, err
	}

	s.logger.Info("payment completed",
		"transaction_id", transaction.ID,
		"transaction_hash", transaction.Hash,
		"parent_hash", parent.Hash,
		"successful", response.IsSuccessful(),
		"processing", response.IsProcessing(),
	)

	return &PaymentResult{Transaction: transaction, Response: response}, nil
}

func (s *CheckoutService) newTransaction(transactionType domain.TransactionType, amount decimal.Decimal, currency string) *domain.Transaction {
	return &domain.Transaction{
		ID:              uuid.NewString(),
		Hash:            uuid.NewString(),
		Type:            transactionType,
		PaymentAmount:   amount,
		PaymentCurrency: currency,
		CreatedAt:       time.Now().UTC(),
	}
}

func (s *CheckoutService) storeResponse(ctx context.Context, transaction *domain.Transaction, response RequestResponse) error {
	data, err := json.Marshal(response.GetData())
	if err != nil {
		return err
	}

	transaction.Reference = response.GetTransactionReference()
	transaction.Response = data

	return s.transactions.AttachResponse(ctx, transaction.ID, transaction.Reference, data)
}
