package usecase

import (
	"context"

	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindAll(ctx context.Context, orderType string) ([]domain.Order, error)
}

type OwnershipReader interface {
	FindOwnership(ctx context.Context, customerID, propertyID uint) (*domain.CustomerSummary, *domain.PropertySummary, error)
}

type UserReader interface {
	FindSummaryByID(ctx context.Context, id uint) (*domain.UserSummary, error)
}

type LineItemReader[T any] interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]T, error)
}

type PaymentReader interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.Payment, error)
}

// OrderQueryUseCase composes the read projection: order row, creator,
// resolved customer/property pair, all five item collections and the payment
// schedule.
type OrderQueryUseCase struct {
	orders    OrderReader
	ownership OwnershipReader
	users     UserReader
	fruit     LineItemReader[domain.FruitOrderItem]
	seed      LineItemReader[domain.SeedOrderItem]
	rootstock LineItemReader[domain.RootstockOrderItem]
	borbulha  LineItemReader[domain.BorbulhaOrderItem]
	bench     LineItemReader[domain.SeedlingBenchOrderItem]
	payments  PaymentReader
	logger    *zap.Logger
}

func NewOrderQueryUseCase(
	orders OrderReader,
	ownership OwnershipReader,
	users UserReader,
	fruit LineItemReader[domain.FruitOrderItem],
	seed LineItemReader[domain.SeedOrderItem],
	rootstock LineItemReader[domain.RootstockOrderItem],
	borbulha LineItemReader[domain.BorbulhaOrderItem],
	bench LineItemReader[domain.SeedlingBenchOrderItem],
	payments PaymentReader,
	logger *zap.Logger,
) *OrderQueryUseCase {
	return &OrderQueryUseCase{
		orders:    orders,
		ownership: ownership,
		users:     users,
		fruit:     fruit,
		seed:      seed,
		rootstock: rootstock,
		borbulha:  borbulha,
		bench:     bench,
		payments:  payments,
		logger:    logger,
	}
}

// GetOrder returns nil for an unknown id: an absent order is not an error on
// simple reads.
func (uc *OrderQueryUseCase) GetOrder(ctx context.Context, orderID uint) (*dto.OrderView, error) {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, nil
		}
		return nil, err
	}

	return uc.compose(ctx, *order)
}

func (uc *OrderQueryUseCase) ListOrders(ctx context.Context, orderType string) ([]dto.OrderView, error) {
	if orderType != "" && !domain.IsValidOrderType(orderType) {
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field: "type", Message: "type must be one of fruit, seed, rootstock, borbulha, seedlingBench",
		})
	}

	orders, err := uc.orders.FindAll(ctx, orderType)
	if err != nil {
		return nil, err
	}

	views := make([]dto.OrderView, 0, len(orders))
	for _, order := range orders {
		view, err := uc.compose(ctx, order)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	return views, nil
}

func (uc *OrderQueryUseCase) compose(ctx context.Context, order domain.Order) (*dto.OrderView, error) {
	user, err := uc.users.FindSummaryByID(ctx, order.UserID)
	if err != nil {
		return nil, err
	}

	customer, property, err := uc.ownership.FindOwnership(ctx, order.CustomerID, order.CustomerPropertyID)
	if err != nil {
		return nil, err
	}

	payments, err := uc.payments.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	fruitItems, err := uc.fruit.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	seedItems, err := uc.seed.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	rootstockItems, err := uc.rootstock.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	borbulhaItems, err := uc.borbulha.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	benchItems, err := uc.bench.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	view := dto.OrderView{
		ID:           order.ID,
		Type:         order.Type,
		OrderDate:    order.OrderDate,
		DeliveryDate: order.DeliveryDate,
		NfNumber:     order.NfNumber,
		Status:       order.Status,
		User:         dto.NewUserDTO(*user),
		CustomerProperty: dto.CustomerPropertyDTO{
			Customer: dto.NewCustomerDTO(*customer),
			Property: dto.NewPropertyDTO(*property),
		},
		Payments:                mapSlice(payments, dto.NewPaymentDTO),
		FruitOrderItems:         mapSlice(fruitItems, dto.NewFruitItemDTO),
		SeedOrderItems:          mapSlice(seedItems, dto.NewSeedItemDTO),
		RootstockOrderItems:     mapSlice(rootstockItems, dto.NewRootstockItemDTO),
		BorbulhaOrderItems:      mapSlice(borbulhaItems, dto.NewBorbulhaItemDTO),
		SeedlingBenchOrderItems: mapSlice(benchItems, dto.NewSeedlingBenchItemDTO),
	}

	return &view, nil
}

func mapSlice[T, D any](in []T, f func(T) D) []D {
	out := make([]D, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
