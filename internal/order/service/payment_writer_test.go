package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	"viveiro/internal/errors"
	"viveiro/internal/order/repository"
	"viveiro/internal/testutil"
)

func setupPaymentWriter(t *testing.T) (*PaymentWriter, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)

	writer := NewPaymentWriter(
		db,
		repository.NewMySQLOrderRepository(db),
		repository.NewMySQLPaymentRepository(db),
		zap.NewNop(),
	)
	return writer, db
}

func TestPaymentWriter_AddPayment(t *testing.T) {
	writer, db := setupPaymentWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	payment, err := writer.AddPayment(context.Background(), orderID, dto.PaymentDraft{
		Amount:        1500.00,
		Method:        "pix",
		ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.NotZero(t, payment.ID)
	assert.Equal(t, orderID, payment.OrderID)
	assert.Equal(t, 1500.00, payment.Amount)
	assert.False(t, payment.Received)
}

func TestPaymentWriter_AddPayment_CanceledOrderRejected(t *testing.T) {
	writer, db := setupPaymentWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusCanceled, userID, customerID, propertyID)

	_, err := writer.AddPayment(context.Background(), orderID, dto.PaymentDraft{
		Amount:        1500.00,
		Method:        "pix",
		ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})

	require.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestPaymentWriter_EditPayment(t *testing.T) {
	writer, db := setupPaymentWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	created, err := writer.AddPayment(context.Background(), orderID, dto.PaymentDraft{
		Amount:        1500.00,
		Method:        "pix",
		ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	updated, err := writer.EditPayment(context.Background(), created.ID, dto.PaymentDraft{
		Amount:        2000.00,
		Method:        "boleto",
		ScheduledDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Received:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2000.00, updated.Amount)
	assert.Equal(t, "boleto", updated.Method)
	assert.True(t, updated.Received)
}

func TestPaymentWriter_DeletePayment(t *testing.T) {
	writer, db := setupPaymentWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	created, err := writer.AddPayment(context.Background(), orderID, dto.PaymentDraft{
		Amount:        1500.00,
		Method:        "pix",
		ScheduledDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	deleted, err := writer.DeletePayment(context.Background(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	repo := repository.NewMySQLPaymentRepository(db)
	payments, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestPaymentWriter_DeletePayment_NotFound(t *testing.T) {
	writer, db := setupPaymentWriter(t)
	defer testutil.CleanupTestDB(t, db)

	_, err := writer.DeletePayment(context.Background(), 99999)

	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
