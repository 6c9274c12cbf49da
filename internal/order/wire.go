package order

import (
	"database/sql"

	"go.uber.org/zap"

	customerrepo "viveiro/internal/customer/repository"
	"viveiro/internal/domain"
	"viveiro/internal/order/controller"
	orderrepo "viveiro/internal/order/repository"
	"viveiro/internal/order/service"
	"viveiro/internal/order/usecase"
)

type Module struct {
	Orders             *controller.OrderController
	FruitItems         controller.ItemRoutes
	SeedItems          controller.ItemRoutes
	RootstockItems     controller.ItemRoutes
	BorbulhaItems      controller.ItemRoutes
	SeedlingBenchItems controller.ItemRoutes
	Payments           *controller.PaymentController
}

func NewModule(db *sql.DB, logger *zap.Logger) *Module {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	customerPropRepo := customerrepo.NewMySQLCustomerPropertyRepository(db)
	userRepo := customerrepo.NewMySQLUserRepository(db)
	paymentRepo := orderrepo.NewMySQLPaymentRepository(db)

	fruitRepo := orderrepo.NewMySQLFruitItemRepository(db)
	seedRepo := orderrepo.NewMySQLSeedItemRepository(db)
	rootstockRepo := orderrepo.NewMySQLRootstockItemRepository(db)
	borbulhaRepo := orderrepo.NewMySQLBorbulhaItemRepository(db)
	benchRepo := orderrepo.NewMySQLSeedlingBenchItemRepository(db)

	writer := service.NewOrderWriter(db, orderRepo, customerPropRepo, logger)
	orderUC := usecase.NewOrderUseCase(writer, logger)
	queryUC := usecase.NewOrderQueryUseCase(
		orderRepo, customerPropRepo, userRepo,
		fruitRepo, seedRepo, rootstockRepo, borbulhaRepo, benchRepo,
		paymentRepo, logger,
	)

	fruitWriter := service.NewLineItemWriter(db, orderRepo, fruitRepo,
		func(i domain.FruitOrderItem) uint { return i.OrderID }, "fruit", logger)
	seedWriter := service.NewLineItemWriter(db, orderRepo, seedRepo,
		func(i domain.SeedOrderItem) uint { return i.OrderID }, "seed", logger)
	rootstockWriter := service.NewLineItemWriter(db, orderRepo, rootstockRepo,
		func(i domain.RootstockOrderItem) uint { return i.OrderID }, "rootstock", logger)
	borbulhaWriter := service.NewLineItemWriter(db, orderRepo, borbulhaRepo,
		func(i domain.BorbulhaOrderItem) uint { return i.OrderID }, "borbulha", logger)
	benchWriter := service.NewLineItemWriter(db, orderRepo, benchRepo,
		func(i domain.SeedlingBenchOrderItem) uint { return i.OrderID }, "seedlingBench", logger)

	paymentWriter := service.NewPaymentWriter(db, orderRepo, paymentRepo, logger)

	return &Module{
		Orders: controller.NewOrderController(orderUC, queryUC, logger),
		FruitItems: controller.NewFruitItemController(
			usecase.NewLineItemUseCase(fruitWriter, usecase.FruitItemRule), logger),
		SeedItems: controller.NewSeedItemController(
			usecase.NewLineItemUseCase(seedWriter, usecase.SeedItemRule), logger),
		RootstockItems: controller.NewRootstockItemController(
			usecase.NewLineItemUseCase(rootstockWriter, usecase.RootstockItemRule), logger),
		BorbulhaItems: controller.NewBorbulhaItemController(
			usecase.NewLineItemUseCase(borbulhaWriter, usecase.BorbulhaItemRule), logger),
		SeedlingBenchItems: controller.NewSeedlingBenchItemController(
			usecase.NewLineItemUseCase(benchWriter, usecase.SeedlingBenchItemRule), logger),
		Payments: controller.NewPaymentController(
			usecase.NewPaymentUseCase(paymentWriter), logger),
	}
}
