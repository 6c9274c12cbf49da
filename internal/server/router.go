package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"viveiro/internal/order"
	"viveiro/internal/order/controller"
)

func NewRouter(mod *order.Module, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Route("/api", func(api chi.Router) {
		api.Use(Identity(logger))

		api.Route("/orders", func(orders chi.Router) {
			orders.Get("/", mod.Orders.ListOrders)
			orders.Post("/", mod.Orders.CreateOrder)

			orders.Route("/{orderId}", func(o chi.Router) {
				o.Get("/", mod.Orders.GetOrder)
				o.Put("/", mod.Orders.EditOrder)
				o.Patch("/cancel", mod.Orders.CancelOrder)

				mountItemRoutes(o, "fruitOrderItems", mod.FruitItems)
				mountItemRoutes(o, "seedOrderItems", mod.SeedItems)
				mountItemRoutes(o, "rootstockOrderItems", mod.RootstockItems)
				mountItemRoutes(o, "borbulhaOrderItems", mod.BorbulhaItems)
				mountItemRoutes(o, "seedlingBenchOrderItems", mod.SeedlingBenchItems)

				o.Route("/payments", func(p chi.Router) {
					p.Post("/", mod.Payments.AddPayment)
					p.Put("/{paymentId}", mod.Payments.EditPayment)
					p.Delete("/{paymentId}", mod.Payments.DeletePayment)
				})
			})
		})
	})

	return r
}

func mountItemRoutes(r chi.Router, path string, routes controller.ItemRoutes) {
	r.Route("/"+path, func(items chi.Router) {
		items.Post("/", routes.AddItems)
		items.Put("/{orderItemId}", routes.EditItem)
		items.Delete("/{orderItemId}", routes.DeleteItem)
	})
}
