package usecase

import (
	"context"
	"strings"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type PaymentWriter interface {
	AddPayment(ctx context.Context, orderID uint, draft dto.PaymentDraft) (*domain.Payment, error)
	EditPayment(ctx context.Context, paymentID uint, draft dto.PaymentDraft) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID uint) (*domain.Payment, error)
}

type PaymentUseCase struct {
	writer PaymentWriter
}

func NewPaymentUseCase(writer PaymentWriter) *PaymentUseCase {
	return &PaymentUseCase{writer: writer}
}

func (uc *PaymentUseCase) AddPayment(ctx context.Context, orderID uint, draft dto.PaymentDraft) (*domain.Payment, error) {
	if err := validatePaymentDraft(draft); err != nil {
		return nil, err
	}
	return uc.writer.AddPayment(ctx, orderID, draft)
}

func (uc *PaymentUseCase) EditPayment(ctx context.Context, paymentID uint, draft dto.PaymentDraft) (*domain.Payment, error) {
	if err := validatePaymentDraft(draft); err != nil {
		return nil, err
	}
	return uc.writer.EditPayment(ctx, paymentID, draft)
}

func (uc *PaymentUseCase) DeletePayment(ctx context.Context, paymentID uint) (*domain.Payment, error) {
	return uc.writer.DeletePayment(ctx, paymentID)
}

func validatePaymentDraft(draft dto.PaymentDraft) error {
	var details []apperrors.ValidationDetail

	if draft.Amount <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "amount", Message: "amount must be positive",
		})
	}
	if strings.TrimSpace(draft.Method) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field: "method", Message: "method must not be empty",
		})
	}
	if draft.ScheduledDate.IsZero() {
		details = append(details, apperrors.ValidationDetail{
			Field: "scheduledDate", Message: "scheduledDate is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}
	return nil
}
