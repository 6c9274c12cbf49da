package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"viveiro/internal/errors"
)

// ItemTable describes how one line-item type maps onto its MySQL table. The
// five order item collections share identical mutation logic and differ only
// in this descriptor, so there is exactly one repository implementation.
type ItemTable[T any] struct {
	// Name is the SQL table, Kind the item name used in error messages.
	Name string
	Kind string

	// InsertCols are the writable columns after orderId; InsertArgs extracts
	// the matching values from an item.
	InsertCols []string
	InsertArgs func(item T) []interface{}

	// SelectBase is a full SELECT ... FROM clause (items table aliased "i",
	// reference joins included) without a WHERE. Scan reads one of its rows.
	SelectBase string
	Scan       func(rows *sql.Rows) (T, error)

	// SetCols and UpdateArgs drive the in-place edit of one item.
	SetCols    []string
	UpdateArgs func(item T) []interface{}
}

type MySQLLineItemRepository[T any] struct {
	db  *sql.DB
	tbl ItemTable[T]
}

func NewMySQLLineItemRepository[T any](db *sql.DB, tbl ItemTable[T]) *MySQLLineItemRepository[T] {
	return &MySQLLineItemRepository[T]{db: db, tbl: tbl}
}

// InsertBatch attaches every item to orderID. Atomicity comes from the
// caller's transaction: any failure rolls back the whole batch.
func (r *MySQLLineItemRepository[T]) InsertBatch(ctx context.Context, tx *sql.Tx, orderID uint, items []T) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (orderId, %s) VALUES (?%s)",
		r.tbl.Name,
		strings.Join(r.tbl.InsertCols, ", "),
		strings.Repeat(", ?", len(r.tbl.InsertCols)),
	)

	for _, item := range items {
		args := append([]interface{}{orderID}, r.tbl.InsertArgs(item)...)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting %s item: %w", r.tbl.Kind, err)
		}
	}

	return nil
}

func (r *MySQLLineItemRepository[T]) Update(ctx context.Context, tx *sql.Tx, id uint, item T) error {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = ? WHERE id = ?",
		r.tbl.Name,
		strings.Join(r.tbl.SetCols, " = ?, "),
	)

	args := append(r.tbl.UpdateArgs(item), id)
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating %s item: %w", r.tbl.Kind, err)
	}

	return nil
}

func (r *MySQLLineItemRepository[T]) Delete(ctx context.Context, tx *sql.Tx, id uint) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", r.tbl.Name)

	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting %s item: %w", r.tbl.Kind, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("%s item with id %d not found", r.tbl.Kind, id))
	}

	return nil
}

// FindByIDTx loads one item inside the caller's transaction, used by mutation
// flows to locate the owning order before the status gate.
func (r *MySQLLineItemRepository[T]) FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (T, error) {
	var zero T

	query := r.tbl.SelectBase + " WHERE i.id = ?"
	rows, err := tx.QueryContext(ctx, query, id)
	if err != nil {
		return zero, fmt.Errorf("querying %s item by id: %w", r.tbl.Kind, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, fmt.Errorf("querying %s item by id: %w", r.tbl.Kind, err)
		}
		return zero, errors.NewNotFoundError(fmt.Sprintf("%s item with id %d not found", r.tbl.Kind, id))
	}

	item, err := r.tbl.Scan(rows)
	if err != nil {
		return zero, fmt.Errorf("scanning %s item: %w", r.tbl.Kind, err)
	}

	return item, nil
}

func (r *MySQLLineItemRepository[T]) FindByOrderID(ctx context.Context, orderID uint) ([]T, error) {
	query := r.tbl.SelectBase + " WHERE i.orderId = ? ORDER BY i.id"

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying %s items: %w", r.tbl.Kind, err)
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := r.tbl.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s item: %w", r.tbl.Kind, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s items: %w", r.tbl.Kind, err)
	}

	return items, nil
}
