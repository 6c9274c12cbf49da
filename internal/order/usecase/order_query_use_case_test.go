package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/errors"
)

type stubOrderReader struct {
	findByIDFn func(ctx context.Context, id uint) (*domain.Order, error)
	findAllFn  func(ctx context.Context, orderType string) ([]domain.Order, error)

	findAllCalls int
}

func (s *stubOrderReader) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubOrderReader) FindAll(ctx context.Context, orderType string) ([]domain.Order, error) {
	s.findAllCalls++
	return s.findAllFn(ctx, orderType)
}

type stubOwnershipReader struct {
	customer domain.CustomerSummary
	property domain.PropertySummary
}

func (s *stubOwnershipReader) FindOwnership(_ context.Context, _, _ uint) (*domain.CustomerSummary, *domain.PropertySummary, error) {
	return &s.customer, &s.property, nil
}

type stubUserReader struct {
	user domain.UserSummary
}

func (s *stubUserReader) FindSummaryByID(_ context.Context, _ uint) (*domain.UserSummary, error) {
	return &s.user, nil
}

type stubItemReader[T any] struct {
	items []T
}

func (s *stubItemReader[T]) FindByOrderID(_ context.Context, _ uint) ([]T, error) {
	return s.items, nil
}

type stubPaymentReader struct {
	payments []domain.Payment
}

func (s *stubPaymentReader) FindByOrderID(_ context.Context, _ uint) ([]domain.Payment, error) {
	return s.payments, nil
}

func newTestQueryUseCase(orders *stubOrderReader) *OrderQueryUseCase {
	return NewOrderQueryUseCase(
		orders,
		&stubOwnershipReader{
			customer: domain.CustomerSummary{ID: 3, Name: "Sitio Laranjal"},
			property: domain.PropertySummary{ID: 12, Name: "Fazenda Norte", City: "Itajai"},
		},
		&stubUserReader{user: domain.UserSummary{ID: 7, Name: "Vendedor"}},
		&stubItemReader[domain.FruitOrderItem]{items: []domain.FruitOrderItem{
			{ID: 1, OrderID: 1, Name: "Ponkan", Quantity: 10, BoxPrice: 45.50},
		}},
		&stubItemReader[domain.SeedOrderItem]{items: []domain.SeedOrderItem{}},
		&stubItemReader[domain.RootstockOrderItem]{items: []domain.RootstockOrderItem{}},
		&stubItemReader[domain.BorbulhaOrderItem]{items: []domain.BorbulhaOrderItem{}},
		&stubItemReader[domain.SeedlingBenchOrderItem]{items: []domain.SeedlingBenchOrderItem{}},
		&stubPaymentReader{payments: []domain.Payment{
			{ID: 2, OrderID: 1, Amount: 1500.00, Method: "pix"},
		}},
		zap.NewNop(),
	)
}

func testOrder() domain.Order {
	return domain.Order{
		ID:                 1,
		Type:               domain.OrderTypeFruit,
		OrderDate:          time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate:       time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:             domain.OrderStatusActive,
		UserID:             7,
		CustomerID:         3,
		CustomerPropertyID: 12,
	}
}

func TestOrderQueryUseCase_GetOrder_ComposesView(t *testing.T) {
	orders := &stubOrderReader{
		findByIDFn: func(_ context.Context, id uint) (*domain.Order, error) {
			order := testOrder()
			order.ID = id
			return &order, nil
		},
	}
	uc := newTestQueryUseCase(orders)

	view, err := uc.GetOrder(context.Background(), 1)

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, uint(1), view.ID)
	assert.Equal(t, "Vendedor", view.User.Name)
	assert.Equal(t, "Sitio Laranjal", view.CustomerProperty.Customer.Name)
	assert.Equal(t, "Fazenda Norte", view.CustomerProperty.Property.Name)
	require.Len(t, view.FruitOrderItems, 1)
	assert.Equal(t, "Ponkan", view.FruitOrderItems[0].Name)
	require.Len(t, view.Payments, 1)
	assert.Equal(t, "pix", view.Payments[0].Method)
	// Empty collections serialize as [], not null.
	assert.NotNil(t, view.SeedOrderItems)
	assert.Empty(t, view.SeedOrderItems)
}

func TestOrderQueryUseCase_GetOrder_MissingReturnsNil(t *testing.T) {
	orders := &stubOrderReader{
		findByIDFn: func(_ context.Context, id uint) (*domain.Order, error) {
			return nil, errors.NewNotFoundError("order not found")
		},
	}
	uc := newTestQueryUseCase(orders)

	view, err := uc.GetOrder(context.Background(), 99999)

	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestOrderQueryUseCase_ListOrders(t *testing.T) {
	orders := &stubOrderReader{
		findAllFn: func(_ context.Context, orderType string) ([]domain.Order, error) {
			assert.Equal(t, domain.OrderTypeFruit, orderType)
			return []domain.Order{testOrder()}, nil
		},
	}
	uc := newTestQueryUseCase(orders)

	views, err := uc.ListOrders(context.Background(), domain.OrderTypeFruit)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, uint(1), views[0].ID)
	assert.Equal(t, 1, orders.findAllCalls)
}

func TestOrderQueryUseCase_ListOrders_InvalidTypeFilter(t *testing.T) {
	orders := &stubOrderReader{}
	uc := newTestQueryUseCase(orders)

	_, err := uc.ListOrders(context.Background(), "seedling")

	require.Error(t, err)
	_, ok := errors.IsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, 0, orders.findAllCalls)
}

func TestOrderQueryUseCase_ListOrders_EmptyFilterListsAll(t *testing.T) {
	orders := &stubOrderReader{
		findAllFn: func(_ context.Context, orderType string) ([]domain.Order, error) {
			assert.Equal(t, "", orderType)
			return []domain.Order{}, nil
		},
	}
	uc := newTestQueryUseCase(orders)

	views, err := uc.ListOrders(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, views)
	assert.Equal(t, 1, orders.findAllCalls)
}
