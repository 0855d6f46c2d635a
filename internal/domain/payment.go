package domain

import "time"

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentState is the state of a single payment attempt. An order may hold
// several attempts (a declined card followed by a bank transfer), but at
// most one of them may ever reach StateSucceeded.
type PaymentState string

const (
	StatePending   PaymentState = "pending"
	StateSucceeded PaymentState = "succeeded"
	StateFailed    PaymentState = "failed"
	StateCancelled PaymentState = "cancelled"
	StateRefunded  PaymentState = "refunded"
)

type Payment struct {
	ID              string
	OrderID         string
	// ExternalRef is the gateway checkout session id for card payments or
	// the bank reference code for transfers. Unique across all payments,
	// which is what makes succeeded-event processing idempotent.
	ExternalRef     string
	Method          PaymentMethod
	Amount          float64
	Currency        string
	State           PaymentState
	FailureReason   string
	ReceiptPath     string
	ReceiptVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	SucceededAt     *time.Time
	FailedAt        *time.Time
}
