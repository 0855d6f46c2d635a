package metrics

import (
	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OrdersCompletedTotal     prometheus.CounterVec
	OrdersCancelledTotal     prometheus.CounterVec

	PaymentsTotal       prometheus.CounterVec
	PaymentsAmountTotal prometheus.CounterVec

	QuoteErrorsTotal prometheus.CounterVec

	OrderProcessingDuration prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of created orders",
			},
			[]string{"service_type", "academic_level", "currency"},
		),

		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total created order amount in USD",
			},
			[]string{"service_type"},
		),

		OrdersCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_completed_total",
				Help: "Total number of completed orders",
			},
			[]string{"service_type"},
		),

		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Total number of cancelled orders",
			},
			[]string{"service_type", "reason"},
		),

		PaymentsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_total",
				Help: "Total number of payment attempts by terminal state",
			},
			[]string{"method", "state"},
		),

		PaymentsAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payments_amount_total",
				Help: "Total succeeded payment amount by currency",
			},
			[]string{"method", "currency"},
		),

		QuoteErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quote_errors_total",
				Help: "Total number of rejected quote requests",
			},
			[]string{"reason"},
		),

		OrderProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_processing_duration_seconds",
				Help:    "Time from order creation to completion",
				Buckets: prometheus.ExponentialBuckets(60, 4, 10),
			},
			[]string{"service_type"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(order *domain.Order) {
	m.OrdersCreatedTotal.WithLabelValues(
		string(order.ServiceType),
		string(order.AcademicLevel),
		order.Pricing.Currency,
	).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(string(order.ServiceType)).
		Add(order.Pricing.TotalAmountUSD)
}

func (m *OrderMetrics) RecordOrderCompleted(order *domain.Order) {
	m.OrdersCompletedTotal.WithLabelValues(string(order.ServiceType)).Inc()
	if order.CompletedAt != nil {
		m.OrderProcessingDuration.WithLabelValues(string(order.ServiceType)).
			Observe(order.CompletedAt.Sub(order.CreatedAt).Seconds())
	}
}

func (m *OrderMetrics) RecordOrderCancelled(order *domain.Order, reason string) {
	m.OrdersCancelledTotal.WithLabelValues(string(order.ServiceType), reason).Inc()
}

func (m *OrderMetrics) RecordPayment(payment *domain.Payment) {
	m.PaymentsTotal.WithLabelValues(string(payment.Method), string(payment.State)).Inc()
	if payment.State == domain.StateSucceeded {
		m.PaymentsAmountTotal.WithLabelValues(string(payment.Method), payment.Currency).
			Add(payment.Amount)
	}
}

func (m *OrderMetrics) RecordQuoteError(reason string) {
	m.QuoteErrorsTotal.WithLabelValues(reason).Inc()
}
