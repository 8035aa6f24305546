package postgres

import (
	"fmt"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainModel: maps db model to domain entity
func toDomainModel(m *TransactionModel) (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(m.PaymentAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid stored payment amount %q: %w", m.PaymentAmount, err)
	}

	transaction := &domain.Transaction{
		ID:              m.ID,
		Hash:            m.Hash,
		Type:            domain.TransactionType(m.Type),
		PaymentAmount:   amount,
		PaymentCurrency: m.PaymentCurrency,
		Response:        m.Response,
		CreatedAt:       m.CreatedAt,
	}
	if m.Reference != nil {
		transaction.Reference = *m.Reference
	}

	return transaction, nil
}

// toDBModel: maps domain entity to db model
func toDBModel(t *domain.Transaction) *TransactionModel {
	m := &TransactionModel{
		ID:              t.ID,
		Hash:            t.Hash,
		Type:            string(t.Type),
		PaymentAmount:   t.PaymentAmount.String(),
		PaymentCurrency: t.PaymentCurrency,
		Response:        t.Response,
		CreatedAt:       t.CreatedAt,
	}
	if t.Reference != "" {
		m.Reference = &t.Reference
	}
	if parent := t.Parent(); parent != nil {
		m.ParentID = &parent.ID
	}

	return m
}
