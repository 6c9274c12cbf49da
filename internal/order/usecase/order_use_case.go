package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type OrderWriter interface {
	Create(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error)
	Edit(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uint) (*domain.Order, error)
}

type OrderUseCase struct {
	writer OrderWriter
	logger *zap.Logger
}

func NewOrderUseCase(writer OrderWriter, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{writer: writer, logger: logger}
}

func (uc *OrderUseCase) Create(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error) {
	var details []apperrors.ValidationDetail

	if draft.Type == "" {
		details = append(details, apperrors.ValidationDetail{
			Field: "type", Message: "type is required",
		})
	} else if !domain.IsValidOrderType(draft.Type) {
		details = append(details, apperrors.ValidationDetail{
			Field: "type", Message: "type must be one of fruit, seed, rootstock, borbulha, seedlingBench",
		})
	}

	details = append(details, validateOrderFields(draft.OrderDate, draft.DeliveryDate, draft.CustomerPropertyID)...)

	if draft.UserID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "userId", Message: "caller identity is required",
		})
	}

	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	return uc.writer.Create(ctx, draft)
}

func (uc *OrderUseCase) Edit(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error) {
	details := validateOrderFields(changes.OrderDate, changes.DeliveryDate, changes.CustomerPropertyID)
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	return uc.writer.Edit(ctx, orderID, changes)
}

func (uc *OrderUseCase) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	return uc.writer.Cancel(ctx, orderID)
}

func validateOrderFields(orderDate, deliveryDate time.Time, customerPropertyID uint) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail

	if orderDate.IsZero() {
		details = append(details, apperrors.ValidationDetail{
			Field: "orderDate", Message: "orderDate is required",
		})
	}
	if deliveryDate.IsZero() {
		details = append(details, apperrors.ValidationDetail{
			Field: "deliveryDate", Message: "deliveryDate is required",
		})
	}
	if customerPropertyID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "customerPropertyId", Message: "customerPropertyId is required",
		})
	}

	return details
}
