package domain

import "errors"

var (
	ErrInvalidServiceType      = errors.New("unknown service type")
	ErrInvalidAcademicLevel    = errors.New("unknown academic level")
	ErrInvalidCurrency         = errors.New("unknown currency")
	ErrInvalidStateTransition  = errors.New("invalid state transition")
	ErrCancelRequiresRefund    = errors.New("cancelling a paid order requires a recorded refund")
	ErrDeadlineNotFuture       = errors.New("deadline must be in the future")
	ErrDeliveredFileMissing    = errors.New("delivering an order requires a work file")
	ErrDuplicatePayment        = errors.New("duplicate payment reference")
	ErrPaymentAlreadySucceeded = errors.New("order already has a succeeded payment")
	ErrOrderNotFound           = errors.New("order not found")
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrNumberConflict          = errors.New("order number conflict")
	ErrReceiptNotVerified      = errors.New("bank receipt is not verified")
)
