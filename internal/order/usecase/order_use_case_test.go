package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	"viveiro/internal/errors"
)

type stubOrderWriter struct {
	createFn func(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error)
	editFn   func(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error)
	cancelFn func(ctx context.Context, orderID uint) (*domain.Order, error)

	createCalls int
	editCalls   int
	cancelCalls int
}

func (s *stubOrderWriter) Create(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error) {
	s.createCalls++
	return s.createFn(ctx, draft)
}

func (s *stubOrderWriter) Edit(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error) {
	s.editCalls++
	return s.editFn(ctx, orderID, changes)
}

func (s *stubOrderWriter) Cancel(ctx context.Context, orderID uint) (*domain.Order, error) {
	s.cancelCalls++
	return s.cancelFn(ctx, orderID)
}

func validDraft() dto.OrderDraft {
	return dto.OrderDraft{
		Type:               domain.OrderTypeFruit,
		OrderDate:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		CustomerPropertyID: 12,
		UserID:             7,
	}
}

func TestOrderUseCase_Create_Valid(t *testing.T) {
	writer := &stubOrderWriter{
		createFn: func(_ context.Context, draft dto.OrderDraft) (*domain.Order, error) {
			return &domain.Order{ID: 1, Type: draft.Type, Status: domain.OrderStatusActive}, nil
		},
	}
	uc := NewOrderUseCase(writer, zap.NewNop())

	order, err := uc.Create(context.Background(), validDraft())

	require.NoError(t, err)
	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, 1, writer.createCalls)
}

func TestOrderUseCase_Create_MissingType(t *testing.T) {
	writer := &stubOrderWriter{}
	uc := NewOrderUseCase(writer, zap.NewNop())

	draft := validDraft()
	draft.Type = ""

	_, err := uc.Create(context.Background(), draft)

	require.Error(t, err)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Details, 1)
	assert.Equal(t, "type", ve.Details[0].Field)
	assert.Equal(t, 0, writer.createCalls)
}

func TestOrderUseCase_Create_UnknownType(t *testing.T) {
	writer := &stubOrderWriter{}
	uc := NewOrderUseCase(writer, zap.NewNop())

	draft := validDraft()
	draft.Type = "seedling"

	_, err := uc.Create(context.Background(), draft)

	require.Error(t, err)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "type", ve.Details[0].Field)
	assert.Equal(t, 0, writer.createCalls)
}

func TestOrderUseCase_Create_CollectsAllFieldProblems(t *testing.T) {
	writer := &stubOrderWriter{}
	uc := NewOrderUseCase(writer, zap.NewNop())

	_, err := uc.Create(context.Background(), dto.OrderDraft{})

	require.Error(t, err)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"type", "orderDate", "deliveryDate", "customerPropertyId", "userId"}, fields)
	assert.Equal(t, 0, writer.createCalls)
}

func TestOrderUseCase_Edit_Valid(t *testing.T) {
	writer := &stubOrderWriter{
		editFn: func(_ context.Context, orderID uint, _ dto.OrderChanges) (*domain.Order, error) {
			return &domain.Order{ID: orderID}, nil
		},
	}
	uc := NewOrderUseCase(writer, zap.NewNop())

	order, err := uc.Edit(context.Background(), 5, dto.OrderChanges{
		OrderDate:          time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate:       time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
		CustomerPropertyID: 12,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), order.ID)
	assert.Equal(t, 1, writer.editCalls)
}

func TestOrderUseCase_Edit_MissingFields(t *testing.T) {
	writer := &stubOrderWriter{}
	uc := NewOrderUseCase(writer, zap.NewNop())

	_, err := uc.Edit(context.Background(), 5, dto.OrderChanges{})

	require.Error(t, err)
	ve, ok := errors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 3)
	assert.Equal(t, 0, writer.editCalls)
}

func TestOrderUseCase_Cancel_PassesThrough(t *testing.T) {
	writer := &stubOrderWriter{
		cancelFn: func(_ context.Context, orderID uint) (*domain.Order, error) {
			return &domain.Order{ID: orderID, Status: domain.OrderStatusCanceled}, nil
		},
	}
	uc := NewOrderUseCase(writer, zap.NewNop())

	order, err := uc.Cancel(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCanceled, order.Status)
	assert.Equal(t, 1, writer.cancelCalls)
}
