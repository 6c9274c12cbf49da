package repository

import (
	"context"
	"database/sql"
	"fmt"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, type, orderDate, deliveryDate, nfNumber, status,
	userId, customerId, customerPropertyId, createdAt, updatedAt`

func scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.Type, &order.OrderDate, &order.DeliveryDate,
		&order.NfNumber, &order.Status, &order.UserID, &order.CustomerID,
		&order.CustomerPropertyID, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (type, orderDate, deliveryDate, nfNumber, status,
			userId, customerId, customerPropertyId)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.Type, order.OrderDate, order.DeliveryDate, order.NfNumber,
		order.Status, order.UserID, order.CustomerID, order.CustomerPropertyID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// Update rewrites the mutable order fields. The order type is immutable and
// customerId must already be re-derived from customerPropertyId by the
// caller, inside the same transaction.
func (r *MySQLOrderRepository) Update(ctx context.Context, tx *sql.Tx, order domain.Order) error {
	query := `
		UPDATE Orders
		SET orderDate = ?, deliveryDate = ?, nfNumber = ?,
			customerId = ?, customerPropertyId = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		order.OrderDate, order.DeliveryDate, order.NfNumber,
		order.CustomerID, order.CustomerPropertyID, order.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	return nil
}

// UpdateStatus does not treat zero affected rows as an error: re-canceling a
// canceled order is a no-op, existence is checked by the caller beforehand.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, status, id); err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

// FindByIDForUpdate locks the order row for the duration of the transaction,
// so a concurrent mutation cannot slip between the status gate and the write.
func (r *MySQLOrderRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ? FOR UPDATE`

	order, err := scanOrder(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order for update: %w", err)
	}

	return order, nil
}

// FindAll lists orders, optionally restricted to one order type. An empty
// orderType means no filter.
func (r *MySQLOrderRepository) FindAll(ctx context.Context, orderType string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders`
	args := []interface{}{}

	if orderType != "" {
		query += ` WHERE type = ?`
		args = append(args, orderType)
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.Type, &order.OrderDate, &order.DeliveryDate,
			&order.NfNumber, &order.Status, &order.UserID, &order.CustomerID,
			&order.CustomerPropertyID, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
