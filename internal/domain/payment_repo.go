package domain

import "time"

type PaymentRepository interface {
	// CreatePayment persists a new attempt. A duplicate external
	// reference surfaces as ErrDuplicatePayment.
	CreatePayment(payment *Payment) error
	GetPaymentByID(paymentID string) (*Payment, error)
	GetPaymentByExternalRef(externalRef string) (*Payment, error)
	GetPaymentsByOrderID(orderID string) ([]*Payment, error)
	// MarkSucceeded flips a pending attempt to succeeded. The write is
	// guarded on the pending state; a replay reports applied=false and
	// changes nothing.
	MarkSucceeded(paymentID string, at time.Time) (applied bool, err error)
	MarkFailed(paymentID, reason string, at time.Time) error
	MarkRefunded(paymentID string, at time.Time) error
	SetReceipt(paymentID, receiptPath string) error
	SetReceiptVerified(paymentID string) error
	HasSucceededPayment(orderID string) (bool, error)
}
