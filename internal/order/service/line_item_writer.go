package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"viveiro/internal/domain"
	apperrors "viveiro/internal/errors"
)

type LineItemRepository[T any] interface {
	InsertBatch(ctx context.Context, tx *sql.Tx, orderID uint, items []T) error
	Update(ctx context.Context, tx *sql.Tx, id uint, item T) error
	Delete(ctx context.Context, tx *sql.Tx, id uint) error
	FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (T, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]T, error)
}

type OrderGate interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error)
}

// LineItemWriter is the single transactional mutation path for all five
// line-item collections; the instantiating type and its repository descriptor
// carry everything type-specific. Mutations are refused on canceled orders.
type LineItemWriter[T any] struct {
	db        TransactionManager
	orders    OrderGate
	items     LineItemRepository[T]
	orderIDOf func(T) uint
	logger    *zap.Logger
	kind      string
}

func NewLineItemWriter[T any](
	db TransactionManager,
	orders OrderGate,
	items LineItemRepository[T],
	orderIDOf func(T) uint,
	kind string,
	logger *zap.Logger,
) *LineItemWriter[T] {
	return &LineItemWriter[T]{
		db:        db,
		orders:    orders,
		items:     items,
		orderIDOf: orderIDOf,
		logger:    logger,
		kind:      kind,
	}
}

// AddBatch attaches the whole batch or nothing, and returns the order's full
// item collection after the write.
func (s *LineItemWriter[T]) AddBatch(ctx context.Context, orderID uint, items []T) ([]T, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	order, err := s.orders.FindByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled() {
		return nil, apperrors.NewConflictError("order is canceled")
	}

	if err := s.items.InsertBatch(ctx, tx, orderID, items); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("line items added",
		zap.String("kind", s.kind),
		zap.Uint("orderId", orderID),
		zap.Int("count", len(items)),
	)

	return s.items.FindByOrderID(ctx, orderID)
}

func (s *LineItemWriter[T]) EditItem(ctx context.Context, itemID uint, item T) (T, error) {
	var zero T

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	existing, err := s.items.FindByIDTx(ctx, tx, itemID)
	if err != nil {
		return zero, err
	}

	order, err := s.orders.FindByIDForUpdate(ctx, tx, s.orderIDOf(existing))
	if err != nil {
		return zero, err
	}
	if order.IsCanceled() {
		return zero, apperrors.NewConflictError("order is canceled")
	}

	if err := s.items.Update(ctx, tx, itemID, item); err != nil {
		return zero, err
	}

	updated, err := s.items.FindByIDTx(ctx, tx, itemID)
	if err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, err
	}

	s.logger.Info("line item updated", zap.String("kind", s.kind), zap.Uint("itemId", itemID))

	return updated, nil
}

// DeleteItem removes one item by its own id; the owning order is found
// through the item itself.
func (s *LineItemWriter[T]) DeleteItem(ctx context.Context, itemID uint) (T, error) {
	var zero T

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zero, err
	}
	defer tx.Rollback()

	existing, err := s.items.FindByIDTx(ctx, tx, itemID)
	if err != nil {
		return zero, err
	}

	order, err := s.orders.FindByIDForUpdate(ctx, tx, s.orderIDOf(existing))
	if err != nil {
		return zero, err
	}
	if order.IsCanceled() {
		return zero, apperrors.NewConflictError("order is canceled")
	}

	if err := s.items.Delete(ctx, tx, itemID); err != nil {
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, err
	}

	s.logger.Info("line item deleted", zap.String("kind", s.kind), zap.Uint("itemId", itemID))

	return existing, nil
}
