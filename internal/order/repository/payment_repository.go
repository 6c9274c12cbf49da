package repository

import (
	"context"
	"database/sql"
	"fmt"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
)

type MySQLPaymentRepository struct {
	db *sql.DB
}

func NewMySQLPaymentRepository(db *sql.DB) *MySQLPaymentRepository {
	return &MySQLPaymentRepository{db: db}
}

func (r *MySQLPaymentRepository) Insert(ctx context.Context, tx *sql.Tx, payment domain.Payment) (uint, error) {
	query := `
		INSERT INTO OrderPayments (orderId, amount, method, scheduledDate, received)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		payment.OrderID, payment.Amount, payment.Method, payment.ScheduledDate, payment.Received,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting payment: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLPaymentRepository) Update(ctx context.Context, tx *sql.Tx, payment domain.Payment) error {
	query := `
		UPDATE OrderPayments
		SET amount = ?, method = ?, scheduledDate = ?, received = ?
		WHERE id = ?
	`

	_, err := tx.ExecContext(ctx, query,
		payment.Amount, payment.Method, payment.ScheduledDate, payment.Received, payment.ID,
	)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}

	return nil
}

func (r *MySQLPaymentRepository) Delete(ctx context.Context, tx *sql.Tx, id uint) error {
	query := `DELETE FROM OrderPayments WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting payment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("payment with id %d not found", id))
	}

	return nil
}

func (r *MySQLPaymentRepository) FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (*domain.Payment, error) {
	query := `SELECT id, orderId, amount, method, scheduledDate, received
		FROM OrderPayments WHERE id = ?`

	var payment domain.Payment
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&payment.ID, &payment.OrderID, &payment.Amount,
		&payment.Method, &payment.ScheduledDate, &payment.Received,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("payment with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying payment by id: %w", err)
	}

	return &payment, nil
}

func (r *MySQLPaymentRepository) FindByOrderID(ctx context.Context, orderID uint) ([]domain.Payment, error) {
	query := `SELECT id, orderId, amount, method, scheduledDate, received
		FROM OrderPayments WHERE orderId = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID, &payment.OrderID, &payment.Amount,
			&payment.Method, &payment.ScheduledDate, &payment.Received,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}
