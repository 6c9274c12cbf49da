package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type PaymentRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, payment domain.Payment) (uint, error)
	Update(ctx context.Context, tx *sql.Tx, payment domain.Payment) error
	Delete(ctx context.Context, tx *sql.Tx, id uint) error
	FindByIDTx(ctx context.Context, tx *sql.Tx, id uint) (*domain.Payment, error)
}

type PaymentWriter struct {
	db       TransactionManager
	orders   OrderGate
	payments PaymentRepository
	logger   *zap.Logger
}

func NewPaymentWriter(
	db TransactionManager,
	orders OrderGate,
	payments PaymentRepository,
	logger *zap.Logger,
) *PaymentWriter {
	return &PaymentWriter{
		db:       db,
		orders:   orders,
		payments: payments,
		logger:   logger,
	}
}

func (s *PaymentWriter) AddPayment(ctx context.Context, orderID uint, draft dto.PaymentDraft) (*domain.Payment, error) {
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

	payment := domain.Payment{
		OrderID:       orderID,
		Amount:        draft.Amount,
		Method:        draft.Method,
		ScheduledDate: draft.ScheduledDate,
		Received:      draft.Received,
	}

	id, err := s.payments.Insert(ctx, tx, payment)
	if err != nil {
		return nil, err
	}

	created, err := s.payments.FindByIDTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payment added", zap.Uint("orderId", orderID), zap.Uint("paymentId", id))

	return created, nil
}

func (s *PaymentWriter) EditPayment(ctx context.Context, paymentID uint, draft dto.PaymentDraft) (*domain.Payment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := s.payments.FindByIDTx(ctx, tx, paymentID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByIDForUpdate(ctx, tx, existing.OrderID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled() {
		return nil, apperrors.NewConflictError("order is canceled")
	}

	updated := *existing
	updated.Amount = draft.Amount
	updated.Method = draft.Method
	updated.ScheduledDate = draft.ScheduledDate
	updated.Received = draft.Received

	if err := s.payments.Update(ctx, tx, updated); err != nil {
		return nil, err
	}

	result, err := s.payments.FindByIDTx(ctx, tx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payment updated", zap.Uint("paymentId", paymentID))

	return result, nil
}

func (s *PaymentWriter) DeletePayment(ctx context.Context, paymentID uint) (*domain.Payment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := s.payments.FindByIDTx(ctx, tx, paymentID)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByIDForUpdate(ctx, tx, existing.OrderID)
	if err != nil {
		return nil, err
	}
	if order.IsCanceled() {
		return nil, apperrors.NewConflictError("order is canceled")
	}

	if err := s.payments.Delete(ctx, tx, paymentID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("payment deleted", zap.Uint("paymentId", paymentID))

	return existing, nil
}
