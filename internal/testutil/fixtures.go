package testutil

import (
	"database/sql"
	"testing"
)

// Fixture inserts shared by the integration tests.

func InsertUser(t *testing.T, db *sql.DB, name, email string) uint {
	return execInsert(t, db, `INSERT INTO Users (name, email) VALUES (?, ?)`, name, email)
}

func InsertCustomer(t *testing.T, db *sql.DB, name string) uint {
	return execInsert(t, db, `INSERT INTO Customers (name) VALUES (?)`, name)
}

func InsertProperty(t *testing.T, db *sql.DB, name string) uint {
	return execInsert(t, db, `
		INSERT INTO Properties (producerName, name, address, zip, city, state)
		VALUES ('Produtor', ?, 'Rodovia BR-101 km 42', '88000-000', 'Itajai', 'SC')
	`, name)
}

func LinkCustomerProperty(t *testing.T, db *sql.DB, customerID, propertyID uint) uint {
	return execInsert(t, db,
		`INSERT INTO CustomerProperties (customerId, propertyId) VALUES (?, ?)`,
		customerID, propertyID)
}

func InsertOrder(t *testing.T, db *sql.DB, orderType, status string, userID, customerID, propertyID uint) uint {
	return execInsert(t, db, `
		INSERT INTO Orders (type, orderDate, deliveryDate, status, userId, customerId, customerPropertyId)
		VALUES (?, '2025-03-01', '2025-03-15', ?, ?, ?, ?)
	`, orderType, status, userID, customerID, propertyID)
}

func InsertRootstock(t *testing.T, db *sql.DB, name string) uint {
	return execInsert(t, db, `INSERT INTO Rootstocks (name) VALUES (?)`, name)
}

func InsertGreenhouse(t *testing.T, db *sql.DB, label string) uint {
	return execInsert(t, db, `INSERT INTO Greenhouses (label) VALUES (?)`, label)
}

func InsertSeedlingBench(t *testing.T, db *sql.DB, label string, rootstockID, greenhouseID uint) uint {
	return execInsert(t, db,
		`INSERT INTO SeedlingBenches (label, rootstockId, greenhouseId) VALUES (?, ?, ?)`,
		label, rootstockID, greenhouseID)
}

func execInsert(t *testing.T, db *sql.DB, query string, args ...interface{}) uint {
	t.Helper()

	result, err := db.Exec(query, args...)
	if err != nil {
		t.Fatalf("fixture insert failed: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("fixture last insert id: %v", err)
	}

	return uint(id)
}
