package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	Update(ctx context.Context, tx *sql.Tx, order domain.Order) error
	UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error)
}

type CustomerResolver interface {
	ResolveCustomerID(ctx context.Context, tx *sql.Tx, propertyID uint) (uint, error)
}

// OrderWriter owns the transactional order mutations. Every write that
// depends on the customer-property link resolves it inside the same
// transaction, so the derived customerId can never drift from the link table.
type OrderWriter struct {
	db        TransactionManager
	orderRepo OrderRepository
	resolver  CustomerResolver
	logger    *zap.Logger
}

func NewOrderWriter(
	db TransactionManager,
	orderRepo OrderRepository,
	resolver CustomerResolver,
	logger *zap.Logger,
) *OrderWriter {
	return &OrderWriter{
		db:        db,
		orderRepo: orderRepo,
		resolver:  resolver,
		logger:    logger,
	}
}

func (s *OrderWriter) Create(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op once committed.
	defer tx.Rollback()

	customerID, err := s.resolver.ResolveCustomerID(ctx, tx, draft.CustomerPropertyID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewResolutionError("customer-property link not found")
		}
		return nil, err
	}

	order := domain.Order{
		Type:               draft.Type,
		OrderDate:          draft.OrderDate,
		DeliveryDate:       draft.DeliveryDate,
		NfNumber:           draft.NfNumber,
		Status:             domain.OrderStatusActive,
		UserID:             draft.UserID,
		CustomerID:         customerID,
		CustomerPropertyID: draft.CustomerPropertyID,
	}

	id, err := s.orderRepo.Insert(ctx, tx, order)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		zap.Uint("orderId", id),
		zap.String("type", order.Type),
		zap.Uint("customerId", customerID),
	)

	return s.orderRepo.FindByID(ctx, id)
}

func (s *OrderWriter) Edit(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	current, err := s.orderRepo.FindByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	if current.IsCanceled() {
		return nil, apperrors.NewConflictError("order is canceled")
	}

	customerID, err := s.resolver.ResolveCustomerID(ctx, tx, changes.CustomerPropertyID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewResolutionError("customer-property link not found")
		}
		return nil, err
	}

	updated := *current
	updated.OrderDate = changes.OrderDate
	updated.DeliveryDate = changes.DeliveryDate
	updated.NfNumber = changes.NfNumber
	updated.CustomerID = customerID
	updated.CustomerPropertyID = changes.CustomerPropertyID

	if err := s.orderRepo.Update(ctx, tx, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("order updated", zap.Uint("orderId", orderID), zap.Uint("customerId", customerID))

	return s.orderRepo.FindByID(ctx, orderID)
}

// Cancel is terminal and idempotent. Line items and payments are left
// untouched; stock is not restored.
func (s *OrderWriter) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := s.orderRepo.FindByIDForUpdate(ctx, tx, orderID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, tx, orderID, domain.OrderStatusCanceled); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("order canceled", zap.Uint("orderId", orderID))

	return s.orderRepo.FindByID(ctx, orderID)
}
