package postgres

import "time"

// TransactionModel is the database shape of a gateway transaction. The
// payment amount travels as its decimal string to keep the stored value
// exact; the raw provider response is stored verbatim for follow-up
// operations to parse ids back out of.
type TransactionModel struct {
	ID              string
	Hash            string
	Type            string
	PaymentAmount   string
	PaymentCurrency string
	Reference       *string
	ParentID        *string
	Response        []byte
	CreatedAt       time.Time
}
