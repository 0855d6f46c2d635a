package router

import (
	"net/http"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/delivery/http/handlers"
	"github.com/bu6wer8/student-services-V4-Docker/internal/delivery/http/middleware"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/cache"
	customerusecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/customer"
	orderusecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/order"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New wires every route of the service onto a chi mux.
func New(
	orders orderusecase.OrderUsecase,
	customers customerusecase.CustomerUsecase,
	quoteCache cache.Store,
	quoteCacheTTL time.Duration,
) chi.Router {

	r := chi.NewRouter()
	r.Use(middleware.LogHandle)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quotes", handlers.QuoteHandler(orders, quoteCache, quoteCacheTTL))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", handlers.CreateOrderHandler(orders))
			r.Get("/", handlers.ListOrdersHandler(orders))
			r.Get("/statistics", handlers.OrderStatisticsHandler(orders))
			r.Get("/by-number/{number}", handlers.GetOrderByNumberHandler(orders))

			r.Route("/{orderID}", func(r chi.Router) {
				r.Get("/", handlers.GetOrderHandler(orders))
				r.Post("/status", handlers.UpdateOrderStatusHandler(orders))
				r.Post("/cancel", handlers.CancelOrderHandler(orders))
				r.Post("/deliver", handlers.DeliverOrderHandler(orders))
				r.Put("/notes", handlers.SetAdminNotesHandler(orders))

				r.Post("/payments/card", handlers.StartCardPaymentHandler(orders))
				r.Post("/payments/bank-receipt", handlers.SubmitBankReceiptHandler(orders))
				r.Post("/refund", handlers.RefundPaymentHandler(orders))
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/confirm", handlers.ConfirmPaymentHandler(orders))
			r.Post("/fail", handlers.FailPaymentHandler(orders))
			r.Post("/{paymentID}/verify-receipt", handlers.VerifyBankReceiptHandler(orders))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/touch", handlers.TouchCustomerHandler(customers))
			r.Get("/by-telegram/{telegramID}", handlers.GetCustomerHandler(customers))
			r.Put("/{customerID}/preferences", handlers.UpdatePreferencesHandler(customers))
			r.Get("/{customerID}/orders", handlers.CustomerOrdersHandler(orders))
		})
	})

	return r
}
