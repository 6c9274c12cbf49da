package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
	"viveiro/internal/order/repository"
	"viveiro/internal/testutil"
)

func setupFruitItemWriter(t *testing.T) (*LineItemWriter[domain.FruitOrderItem], *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)

	writer := NewLineItemWriter(
		db,
		repository.NewMySQLOrderRepository(db),
		repository.NewMySQLFruitItemRepository(db),
		func(i domain.FruitOrderItem) uint { return i.OrderID },
		"fruit",
		zap.NewNop(),
	)
	return writer, db
}

func TestLineItemWriter_AddBatch(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	items, err := writer.AddBatch(context.Background(), orderID, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
		{Name: "Murcott", Quantity: 5, BoxPrice: 52.00},
	})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ponkan", items[0].Name)
	assert.Equal(t, orderID, items[0].OrderID)
}

func TestLineItemWriter_AddBatch_CanceledOrderRejected(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusCanceled, userID, customerID, propertyID)

	_, err := writer.AddBatch(context.Background(), orderID, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
	})

	require.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)

	repo := repository.NewMySQLFruitItemRepository(db)
	items, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestLineItemWriter_AddBatch_MissingOrder(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	_, err := writer.AddBatch(context.Background(), 99999, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
	})

	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestLineItemWriter_EditItem(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	items, err := writer.AddBatch(context.Background(), orderID, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)

	updated, err := writer.EditItem(context.Background(), items[0].ID, domain.FruitOrderItem{
		Name: "Murcott", Quantity: 20, BoxPrice: 60.00,
	})

	require.NoError(t, err)
	assert.Equal(t, items[0].ID, updated.ID)
	assert.Equal(t, "Murcott", updated.Name)
	assert.Equal(t, 20, updated.Quantity)
}

func TestLineItemWriter_EditItem_CanceledOrderRejected(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	items, err := writer.AddBatch(context.Background(), orderID, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
	})
	require.NoError(t, err)

	_, err = db.Exec("UPDATE Orders SET status = ? WHERE id = ?", domain.OrderStatusCanceled, orderID)
	require.NoError(t, err)

	_, err = writer.EditItem(context.Background(), items[0].ID, domain.FruitOrderItem{
		Name: "Murcott", Quantity: 20, BoxPrice: 60.00,
	})

	require.Error(t, err)
	_, ok := errors.IsConflictError(err)
	assert.True(t, ok)
}

func TestLineItemWriter_DeleteItem_LeavesSiblings(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	userID, customerID, propertyID := writerFixtures(t, db)
	orderID := testutil.InsertOrder(t, db, domain.OrderTypeFruit, domain.OrderStatusActive, userID, customerID, propertyID)

	items, err := writer.AddBatch(context.Background(), orderID, []domain.FruitOrderItem{
		{Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
		{Name: "Murcott", Quantity: 5, BoxPrice: 52.00},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	deleted, err := writer.DeleteItem(context.Background(), items[0].ID)

	require.NoError(t, err)
	assert.Equal(t, "Ponkan", deleted.Name)

	repo := repository.NewMySQLFruitItemRepository(db)
	remaining, err := repo.FindByOrderID(context.Background(), orderID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Murcott", remaining[0].Name)
}

func TestLineItemWriter_DeleteItem_NotFound(t *testing.T) {
	writer, db := setupFruitItemWriter(t)
	defer testutil.CleanupTestDB(t, db)

	_, err := writer.DeleteItem(context.Background(), 99999)

	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
