package repository

import (
	"context"
	"database/sql"
	"fmt"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
)

type MySQLCustomerPropertyRepository struct {
	db *sql.DB
}

func NewMySQLCustomerPropertyRepository(db *sql.DB) *MySQLCustomerPropertyRepository {
	return &MySQLCustomerPropertyRepository{db: db}
}

// ResolveCustomerID derives the owning customer of a property through the
// CustomerProperties link table. Write paths run it inside their own
// transaction so the derived customerId and the order row commit together.
func (r *MySQLCustomerPropertyRepository) ResolveCustomerID(ctx context.Context, tx *sql.Tx, propertyID uint) (uint, error) {
	query := `SELECT customerId FROM CustomerProperties WHERE propertyId = ? LIMIT 1`

	var customerID uint
	err := tx.QueryRowContext(ctx, query, propertyID).Scan(&customerID)

	if err == sql.ErrNoRows {
		return 0, errors.NewNotFoundError(fmt.Sprintf("no customer-property link for property %d", propertyID))
	}
	if err != nil {
		return 0, fmt.Errorf("resolving customer for property %d: %w", propertyID, err)
	}

	return customerID, nil
}

// FindOwnership loads the customer and property summaries referenced by an
// order, for read composition.
func (r *MySQLCustomerPropertyRepository) FindOwnership(ctx context.Context, customerID, propertyID uint) (*domain.CustomerSummary, *domain.PropertySummary, error) {
	query := `
		SELECT c.id, c.name, c.nickname,
		       p.id, p.producerName, p.name, p.cnpj, p.cpf, p.ie,
		       p.address, p.zip, p.city, p.state, p.country
		FROM Customers c
		JOIN Properties p ON p.id = ?
		WHERE c.id = ?
	`

	var customer domain.CustomerSummary
	var property domain.PropertySummary
	err := r.db.QueryRowContext(ctx, query, propertyID, customerID).Scan(
		&customer.ID, &customer.Name, &customer.Nickname,
		&property.ID, &property.ProducerName, &property.Name,
		&property.Cnpj, &property.Cpf, &property.Ie,
		&property.Address, &property.Zip, &property.City, &property.State, &property.Country,
	)

	if err == sql.ErrNoRows {
		return nil, nil, errors.NewNotFoundError(
			fmt.Sprintf("customer %d or property %d not found", customerID, propertyID))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("querying ownership: %w", err)
	}

	return &customer, &property, nil
}
