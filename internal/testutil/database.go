package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB expects a local MySQL database named 'viveiro_test' and skips
// the test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/viveiro_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"OrderPayments",
		"FruitOrderItems", "SeedOrderItems", "RootstockOrderItems",
		"BorbulhaOrderItems", "SeedlingBenchOrderItems",
		"Orders",
		"SeedlingBenches", "Greenhouses", "Rootstocks",
		"CustomerProperties", "Properties", "Customers", "Users",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates every table the order aggregate touches.
func SetupTestTables(t *testing.T, db *sql.DB) {
	statements := []struct {
		name  string
		query string
	}{
		{"Users", `
		CREATE TABLE IF NOT EXISTS Users (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			email VARCHAR(150) NOT NULL UNIQUE
		)`},
		{"Customers", `
		CREATE TABLE IF NOT EXISTS Customers (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(150) NOT NULL,
			nickname VARCHAR(150)
		)`},
		{"Properties", `
		CREATE TABLE IF NOT EXISTS Properties (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			producerName VARCHAR(150) NOT NULL,
			name VARCHAR(150) NOT NULL,
			cnpj VARCHAR(20),
			cpf VARCHAR(15),
			ie VARCHAR(20),
			address VARCHAR(255) NOT NULL,
			zip VARCHAR(10) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(50) NOT NULL,
			country VARCHAR(50) NOT NULL DEFAULT 'Brasil'
		)`},
		{"CustomerProperties", `
		CREATE TABLE IF NOT EXISTS CustomerProperties (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			customerId INT UNSIGNED NOT NULL,
			propertyId INT UNSIGNED NOT NULL,
			UNIQUE KEY uq_customer_property (customerId, propertyId),
			FOREIGN KEY (customerId) REFERENCES Customers(id) ON DELETE CASCADE,
			FOREIGN KEY (propertyId) REFERENCES Properties(id) ON DELETE CASCADE
		)`},
		{"Rootstocks", `
		CREATE TABLE IF NOT EXISTS Rootstocks (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(150) NOT NULL
		)`},
		{"Greenhouses", `
		CREATE TABLE IF NOT EXISTS Greenhouses (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			label VARCHAR(50) NOT NULL
		)`},
		{"SeedlingBenches", `
		CREATE TABLE IF NOT EXISTS SeedlingBenches (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			label VARCHAR(50) NOT NULL,
			rootstockId INT UNSIGNED NOT NULL,
			greenhouseId INT UNSIGNED NOT NULL,
			FOREIGN KEY (rootstockId) REFERENCES Rootstocks(id),
			FOREIGN KEY (greenhouseId) REFERENCES Greenhouses(id)
		)`},
		{"Orders", `
		CREATE TABLE IF NOT EXISTS Orders (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			orderDate DATETIME NOT NULL,
			deliveryDate DATETIME NOT NULL,
			nfNumber VARCHAR(50),
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			userId INT UNSIGNED NOT NULL,
			customerId INT UNSIGNED NOT NULL,
			customerPropertyId INT UNSIGNED NOT NULL,
			createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			INDEX idx_type (type),
			INDEX idx_customer (customerId)
		)`},
		{"FruitOrderItems", `
		CREATE TABLE IF NOT EXISTS FruitOrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			name VARCHAR(150) NOT NULL,
			quantity INT NOT NULL,
			boxPrice DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			INDEX idx_order (orderId)
		)`},
		{"SeedOrderItems", `
		CREATE TABLE IF NOT EXISTS SeedOrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			name VARCHAR(150) NOT NULL,
			quantity INT NOT NULL,
			kgPrice DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			INDEX idx_order (orderId)
		)`},
		{"RootstockOrderItems", `
		CREATE TABLE IF NOT EXISTS RootstockOrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			rootstockId INT UNSIGNED NOT NULL,
			quantity INT NOT NULL,
			unityPrice DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			FOREIGN KEY (rootstockId) REFERENCES Rootstocks(id),
			INDEX idx_order (orderId)
		)`},
		{"BorbulhaOrderItems", `
		CREATE TABLE IF NOT EXISTS BorbulhaOrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			name VARCHAR(150) NOT NULL,
			quantity INT NOT NULL,
			unityPrice DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			INDEX idx_order (orderId)
		)`},
		{"SeedlingBenchOrderItems", `
		CREATE TABLE IF NOT EXISTS SeedlingBenchOrderItems (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			seedlingBenchId INT UNSIGNED NOT NULL,
			quantity INT NOT NULL,
			unityPrice DECIMAL(10,2) NOT NULL,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			FOREIGN KEY (seedlingBenchId) REFERENCES SeedlingBenches(id),
			INDEX idx_order (orderId)
		)`},
		{"OrderPayments", `
		CREATE TABLE IF NOT EXISTS OrderPayments (
			id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			orderId INT UNSIGNED NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			method VARCHAR(50) NOT NULL,
			scheduledDate DATETIME NOT NULL,
			received TINYINT(1) NOT NULL DEFAULT 0,
			FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
			INDEX idx_order (orderId)
		)`},
	}

	for _, stmt := range statements {
		_, err := db.Exec(stmt.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", stmt.name, err)
		}
	}
}
