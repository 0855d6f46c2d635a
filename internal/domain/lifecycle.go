package domain

// Legal order status transitions. Anything not listed here is rejected at
// the usecase boundary, not just at persistence-write time.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderConfirmed, OrderCancelled},
	OrderConfirmed:  {OrderInProgress, OrderCancelled},
	OrderInProgress: {OrderDelivered, OrderCancelled},
	OrderDelivered:  {OrderCompleted, OrderCancelled},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

var paymentStatusTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending:  {PaymentPaid, PaymentFailed},
	PaymentFailed:   {PaymentPending},
	PaymentPaid:     {PaymentRefunded},
	PaymentRefunded: {},
}

var paymentStateTransitions = map[PaymentState][]PaymentState{
	StatePending:   {StateSucceeded, StateFailed, StateCancelled},
	StateFailed:    {},
	StateCancelled: {},
	StateSucceeded: {StateRefunded},
	StateRefunded:  {},
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return len(orderTransitions[s]) == 0
}

func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	for _, next := range paymentStatusTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s PaymentState) CanTransition(to PaymentState) bool {
	for _, next := range paymentStateTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Refunded reports whether a refund has been recorded against the order,
// either on the order-level payment status or on an individual attempt.
// Cancelling a paid order is only legal once this holds.
func (o *Order) Refunded() bool {
	if o.PaymentStatus == PaymentRefunded {
		return true
	}
	for _, p := range o.Payments {
		if p.State == StateRefunded {
			return true
		}
	}
	return false
}

// SucceededPayment returns the single succeeded attempt, if any.
func (o *Order) SucceededPayment() *Payment {
	for _, p := range o.Payments {
		if p.State == StateSucceeded {
			return p
		}
	}
	return nil
}
