package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType identifies which gateway call produced a transaction.
type TransactionType string

const (
	TransactionTypeAuthorize TransactionType = "authorize"
	TransactionTypeCapture   TransactionType = "capture"
	TransactionTypePurchase  TransactionType = "purchase"
	TransactionTypeRefund    TransactionType = "refund"
)

// Transaction is created by the host per gateway call. The raw provider
// response is attached after the call and persisted by the host; follow-up
// operations (capture, refund) read provider ids back out of it.
type Transaction struct {
	ID              string
	Hash            string
	Type            TransactionType
	PaymentAmount   decimal.Decimal
	PaymentCurrency string

	// Reference is the provider order or capture id once known.
	Reference string

	// Response is the serialized provider response from the call that
	// created this transaction.
	Response []byte

	parent *Transaction

	CreatedAt time.Time
}

// Parent returns the transaction this one follows up on (the authorize for a
// capture, the capture or purchase for a refund), or nil.
func (t *Transaction) Parent() *Transaction {
	return t.parent
}

// SetParent links a follow-up transaction to its originating transaction.
func (t *Transaction) SetParent(parent *Transaction) {
	t.parent = parent
}
