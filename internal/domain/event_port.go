package domain

import "time"

type OrderEventType string

const (
	EventOrderCreated     OrderEventType = "order.created"
	EventOrderStatus      OrderEventType = "order.status_changed"
	EventOrderCancelled   OrderEventType = "order.cancelled"
	EventPaymentSucceeded OrderEventType = "payment.succeeded"
	EventPaymentFailed    OrderEventType = "payment.failed"
	EventPaymentRefunded  OrderEventType = "payment.refunded"
)

// OrderEvent is what the notification worker consumes. Delivery is
// at-least-once and strictly post-commit: a lost event never rolls back
// a lifecycle transition.
type OrderEvent struct {
	Type          OrderEventType `json:"type"`
	OrderID       string         `json:"order_id"`
	OrderNumber   string         `json:"order_number"`
	CustomerID    string         `json:"customer_id"`
	Status        OrderStatus    `json:"status"`
	PaymentStatus PaymentStatus  `json:"payment_status"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}
