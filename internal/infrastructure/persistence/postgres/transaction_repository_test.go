package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/craftcms/commerce-paypal-checkout/internal/domain"
	"github.com/craftcms/commerce-paypal-checkout/internal/infrastructure/persistence"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*TransactionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewTransactionRepository(mock), mock
}

func transactionColumns() []string {
	return []string{
		"id", "hash", "type", "payment_amount", "payment_currency",
		"reference", "parent_id", "response", "created_at",
	}
}

func TestCreate(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now().UTC()

	transaction := &domain.Transaction{
		ID:              "tx-1",
		Hash:            "hash-1",
		Type:            domain.TransactionTypePurchase,
		PaymentAmount:   decimal.RequireFromString("100.00"),
		PaymentCurrency: "USD",
		CreatedAt:       createdAt,
	}

	mock.ExpectExec("INSERT INTO transactions").
		WithArgs("tx-1", "hash-1", "purchase", "100", "USD", (*string)(nil), (*string)(nil), []byte(nil), createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), transaction)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithParent(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now().UTC()

	parent := &domain.Transaction{ID: "tx-parent"}
	transaction := &domain.Transaction{
		ID:              "tx-2",
		Hash:            "hash-2",
		Type:            domain.TransactionTypeRefund,
		PaymentAmount:   decimal.RequireFromString("25.50"),
		PaymentCurrency: "USD",
		Reference:       "5O190127TN364715T",
		CreatedAt:       createdAt,
	}
	transaction.SetParent(parent)

	reference := "5O190127TN364715T"
	parentID := "tx-parent"
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs("tx-2", "hash-2", "refund", "25.5", "USD", &reference, &parentID, []byte(nil), createdAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Create(context.Background(), transaction)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByHash(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now().UTC()
	reference := "5O190127TN364715T"

	rows := mock.NewRows(transactionColumns()).
		AddRow("tx-1", "hash-1", "purchase", "100", "USD", &reference, (*string)(nil), []byte(`{"statusCode":201}`), createdAt)

	mock.ExpectQuery("FROM transactions WHERE hash").
		WithArgs("hash-1").
		WillReturnRows(rows)

	transaction, err := repo.FindByHash(context.Background(), "hash-1")
	require.NoError(t, err)

	assert.Equal(t, "tx-1", transaction.ID)
	assert.Equal(t, domain.TransactionTypePurchase, transaction.Type)
	assert.True(t, transaction.PaymentAmount.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, "5O190127TN364715T", transaction.Reference)
	assert.Nil(t, transaction.Parent())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByHashLoadsParent(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now().UTC()
	parentID := "tx-parent"

	childRows := mock.NewRows(transactionColumns()).
		AddRow("tx-child", "hash-child", "capture", "100", "USD", (*string)(nil), &parentID, []byte(nil), createdAt)
	mock.ExpectQuery("FROM transactions WHERE hash").
		WithArgs("hash-child").
		WillReturnRows(childRows)

	parentRows := mock.NewRows(transactionColumns()).
		AddRow("tx-parent", "hash-parent", "authorize", "100", "USD", (*string)(nil), (*string)(nil), []byte(`{"statusCode":201}`), createdAt)
	mock.ExpectQuery("FROM transactions WHERE id").
		WithArgs("tx-parent").
		WillReturnRows(parentRows)

	transaction, err := repo.FindByHash(context.Background(), "hash-child")
	require.NoError(t, err)

	require.NotNil(t, transaction.Parent())
	assert.Equal(t, "tx-parent", transaction.Parent().ID)
	assert.Equal(t, domain.TransactionTypeAuthorize, transaction.Parent().Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByHashNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("FROM transactions WHERE hash").
		WithArgs("missing").
		WillReturnRows(mock.NewRows(transactionColumns()))

	_, err := repo.FindByHash(context.Background(), "missing")
	assert.ErrorIs(t, err, persistence.ErrTransactionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachResponse(t *testing.T) {
	repo, mock := newMockRepo(t)
	response := []byte(`{"statusCode":201,"result":{"id":"5O190127TN364715T"}}`)

	mock.ExpectExec("UPDATE transactions SET reference").
		WithArgs("tx-1", "5O190127TN364715T", response).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AttachResponse(context.Background(), "tx-1", "5O190127TN364715T", response)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachResponseNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE transactions SET reference").
		WithArgs("missing", "ref", []byte(nil)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.AttachResponse(context.Background(), "missing", "ref", nil)
	assert.ErrorIs(t, err, persistence.ErrTransactionNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
