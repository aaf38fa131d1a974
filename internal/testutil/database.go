package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. It expects a MySQL
// instance at localhost:3306 with a database named 'despensa_test' and
// skips the test when none is reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/despensa_test?parseTime=true"
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

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"AvailableProduct", "Address", "Client", "Product"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema the tests rely on.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createProductTable := `
	CREATE TABLE IF NOT EXISTS Product (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		prices JSON NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createAvailableProductTable := `
	CREATE TABLE IF NOT EXISTS AvailableProduct (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		productId INT NOT NULL,
		date DATE NOT NULL,
		quantityMl INT NOT NULL,
		UNIQUE KEY uq_product_date (productId, date),
		FOREIGN KEY (productId) REFERENCES Product(id) ON DELETE CASCADE,
		CHECK (quantityMl >= 0)
	)`

	createClientTable := `
	CREATE TABLE IF NOT EXISTS Client (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL
	)`

	createAddressTable := `
	CREATE TABLE IF NOT EXISTS Address (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		clientId INT NOT NULL,
		street VARCHAR(255) NOT NULL,
		number VARCHAR(10) NOT NULL,
		neighborhood VARCHAR(100) NOT NULL,
		city VARCHAR(100) NOT NULL,
		state CHAR(2) NOT NULL,
		zipCode VARCHAR(10) NOT NULL,
		complement VARCHAR(255),
		reference VARCHAR(255),
		nickname VARCHAR(100) NOT NULL,
		FOREIGN KEY (clientId) REFERENCES Client(id) ON DELETE CASCADE,
		INDEX idx_client (clientId)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Product", createProductTable},
		{"AvailableProduct", createAvailableProductTable},
		{"Client", createClientTable},
		{"Address", createAddressTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
