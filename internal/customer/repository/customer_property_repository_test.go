package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viveiro/internal/errors"
	"viveiro/internal/testutil"
)

func TestCustomerPropertyRepository_ResolveCustomerID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerPropertyRepository(db)
	ctx := context.Background()

	customerID := testutil.InsertCustomer(t, db, "Sitio Laranjal")
	propertyID := testutil.InsertProperty(t, db, "Fazenda Norte")
	testutil.LinkCustomerProperty(t, db, customerID, propertyID)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	resolved, err := repo.ResolveCustomerID(ctx, tx, propertyID)

	require.NoError(t, err)
	assert.Equal(t, customerID, resolved)
}

func TestCustomerPropertyRepository_ResolveCustomerID_NoLink(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerPropertyRepository(db)
	ctx := context.Background()

	// Property exists but was never linked to a customer.
	propertyID := testutil.InsertProperty(t, db, "Fazenda Sem Dono")

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()

	_, err = repo.ResolveCustomerID(ctx, tx, propertyID)

	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestCustomerPropertyRepository_FindOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerPropertyRepository(db)
	ctx := context.Background()

	customerID := testutil.InsertCustomer(t, db, "Sitio Laranjal")
	propertyID := testutil.InsertProperty(t, db, "Fazenda Norte")
	testutil.LinkCustomerProperty(t, db, customerID, propertyID)

	customer, property, err := repo.FindOwnership(ctx, customerID, propertyID)

	require.NoError(t, err)
	assert.Equal(t, customerID, customer.ID)
	assert.Equal(t, "Sitio Laranjal", customer.Name)
	assert.Nil(t, customer.Nickname)
	assert.Equal(t, propertyID, property.ID)
	assert.Equal(t, "Fazenda Norte", property.Name)
	assert.Equal(t, "Itajai", property.City)
}

func TestCustomerPropertyRepository_FindOwnership_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLCustomerPropertyRepository(db)

	_, _, err := repo.FindOwnership(context.Background(), 99999, 99999)

	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
