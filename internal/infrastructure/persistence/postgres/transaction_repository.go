package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence"
	"github.com/jackc/pgx/v5"
)

// TransactionRepository persists gateway transactions and the raw provider
// responses attached to them.
type TransactionRepository struct {
	db persistence.Executor
}

func NewTransactionRepository(db persistence.Executor) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, hash, type, payment_amount, payment_currency,
			reference, parent_id, response, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	m := toDBModel(transaction)
	_, err := r.db.Exec(ctx, query,
		m.ID,
		m.Hash,
		m.Type,
		m.PaymentAmount,
		m.PaymentCurrency,
		m.Reference,
		m.ParentID,
		m.Response,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// FindByHash retrieves a transaction by its hash, with its parent transaction
// attached when one exists so follow-up operations can read stored provider
// ids out of it.
func (r *TransactionRepository) FindByHash(ctx context.Context, hash string) (*domain.Transaction, error) {
	query := `
		SELECT id, hash, type, payment_amount, payment_currency,
		       reference, parent_id, response, created_at
		FROM transactions WHERE hash = $1
	`

	m, err := scanTransaction(r.db.QueryRow(ctx, query, hash))
	if err != nil {
		return nil, err
	}

	transaction, err := toDomainModel(m)
	if err != nil {
		return nil, err
	}

	if m.ParentID != nil {
		parent, err := r.findByID(ctx, *m.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent transaction: %w", err)
		}
		transaction.SetParent(parent)
	}

	return transaction, nil
}

// AttachResponse stores the provider response and reference on a transaction
// after a gateway call.
func (r *TransactionRepository) AttachResponse(ctx context.Context, id string, reference string, response []byte) error {
	query := `
		UPDATE transactions SET reference = $2, response = $3 WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query, id, reference, response)
	if err != nil {
		return fmt.Errorf("failed to attach response: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return persistence.ErrTransactionNotFound
	}

	return nil
}

func (r *TransactionRepository) findByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, hash, type, payment_amount, payment_currency,
		       reference, parent_id, response, created_at
		FROM transactions WHERE id = $1
	`

	m, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	return toDomainModel(m)
}

func scanTransaction(row pgx.Row) (*TransactionModel, error) {
	var m TransactionModel
	err := row.Scan(
		&m.ID,
		&m.Hash,
		&m.Type,
		&m.PaymentAmount,
		&m.PaymentCurrency,
		&m.Reference,
		&m.ParentID,
		&m.Response,
		&m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, persistence.ErrTransactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	return &m, nil
}
