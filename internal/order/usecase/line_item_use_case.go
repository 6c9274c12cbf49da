package usecase

import (
	"context"
	"fmt"

	apperrors "viveiro/internal/errors"
)

type LineItemWriter[T any] interface {
	AddBatch(ctx context.Context, orderID uint, items []T) ([]T, error)
	EditItem(ctx context.Context, itemID uint, item T) (T, error)
	DeleteItem(ctx context.Context, itemID uint) (T, error)
}

// ItemRule reports the field-level problems of one item. Each line-item type
// plugs in its own rule; everything else is shared.
type ItemRule[T any] func(item T) []apperrors.ValidationDetail

type LineItemUseCase[T any] struct {
	writer LineItemWriter[T]
	rule   ItemRule[T]
}

func NewLineItemUseCase[T any](writer LineItemWriter[T], rule ItemRule[T]) *LineItemUseCase[T] {
	return &LineItemUseCase[T]{writer: writer, rule: rule}
}

// AddBatch validates the whole batch up front: one bad item rejects all of
// them and nothing is persisted.
func (uc *LineItemUseCase[T]) AddBatch(ctx context.Context, orderID uint, items []T) ([]T, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field: "items", Message: "items must not be empty",
		})
	}

	var details []apperrors.ValidationDetail
	for idx, item := range items {
		for _, d := range uc.rule(item) {
			details = append(details, apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].%s", idx, d.Field),
				Message: d.Message,
			})
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("validation failed", details...)
	}

	return uc.writer.AddBatch(ctx, orderID, items)
}

func (uc *LineItemUseCase[T]) EditItem(ctx context.Context, itemID uint, item T) (T, error) {
	if details := uc.rule(item); len(details) > 0 {
		var zero T
		return zero, apperrors.NewValidationError("validation failed", details...)
	}

	return uc.writer.EditItem(ctx, itemID, item)
}

func (uc *LineItemUseCase[T]) DeleteItem(ctx context.Context, itemID uint) (T, error) {
	return uc.writer.DeleteItem(ctx, itemID)
}
