package usecase

import (
	"fmt"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/google/uuid"
)

// StartCardPayment opens a checkout session at the gateway and records a
// pending attempt keyed by the session id.
func (uc *DefaultOrderUsecase) StartCardPayment(orderID, customerEmail string) (*domain.CheckoutSession, error) {
	order, err := uc.beginPaymentAttempt(orderID)
	if err != nil {
		return nil, err
	}

	session, err := uc.Gateway.CreateCheckoutSession(
		order.Number,
		order.Pricing.TotalAmount,
		order.Pricing.Currency,
		order.Subject,
		customerEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkout session: %w", err)
	}

	now := uc.Clock()
	payment := &domain.Payment{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		ExternalRef: session.ID,
		Method:      domain.MethodCard,
		Amount:      order.Pricing.TotalAmount,
		Currency:    order.Pricing.Currency,
		State:       domain.StatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	return session, nil
}

// SubmitBankReceipt records a pending bank-transfer attempt with the
// uploaded receipt. The generated reference code doubles as the external
// id the admin confirms against.
func (uc *DefaultOrderUsecase) SubmitBankReceipt(orderID, receiptPath string) (*domain.Payment, error) {
	order, err := uc.beginPaymentAttempt(orderID)
	if err != nil {
		return nil, err
	}

	// A re-uploaded receipt replaces the one on the open attempt instead
	// of minting a second reference code.
	attempts, err := uc.PaymentRepo.GetPaymentsByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	for _, attempt := range attempts {
		if attempt.Method == domain.MethodBankTransfer && attempt.State == domain.StatePending {
			if err := uc.PaymentRepo.SetReceipt(attempt.ID, receiptPath); err != nil {
				return nil, err
			}
			attempt.ReceiptPath = receiptPath
			return attempt, nil
		}
	}

	now := uc.Clock()
	payment := &domain.Payment{
		ID:          uuid.NewString(),
		OrderID:     order.ID,
		ExternalRef: "BT-" + uc.bankRef(),
		Method:      domain.MethodBankTransfer,
		Amount:      order.Pricing.TotalAmount,
		Currency:    order.Pricing.Currency,
		State:       domain.StatePending,
		ReceiptPath: receiptPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.PaymentRepo.CreatePayment(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// beginPaymentAttempt loads the order and makes sure a new attempt is
// legal: paid orders take no more money, and a previously failed order
// flips back to pending (retry).
func (uc *DefaultOrderUsecase) beginPaymentAttempt(orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	switch order.PaymentStatus {
	case domain.PaymentPaid, domain.PaymentRefunded:
		return nil, domain.ErrPaymentAlreadySucceeded
	case domain.PaymentFailed:
		if err := uc.OrderRepo.TransitionPaymentStatus(order.ID, domain.PaymentFailed, domain.PaymentPending, uc.Clock()); err != nil {
			return nil, err
		}
		order.PaymentStatus = domain.PaymentPending
	}

	return order, nil
}

// ConfirmPayment applies a "payment succeeded" event by external
// reference. Replays are answered with the already-applied attempt: one
// succeeded row, one order transition, one downstream event, no matter
// how many times the gateway or the admin fires the confirmation.
func (uc *DefaultOrderUsecase) ConfirmPayment(externalRef string) (*domain.Payment, error) {
	payment, err := uc.PaymentRepo.GetPaymentByExternalRef(externalRef)
	if err != nil {
		return nil, err
	}

	if payment.State == domain.StateSucceeded {
		return payment, nil
	}
	if payment.State != domain.StatePending {
		return nil, domain.ErrInvalidStateTransition
	}

	succeeded, err := uc.PaymentRepo.HasSucceededPayment(payment.OrderID)
	if err != nil {
		return nil, err
	}
	if succeeded {
		return nil, domain.ErrPaymentAlreadySucceeded
	}

	now := uc.Clock()
	applied, err := uc.PaymentRepo.MarkSucceeded(payment.ID, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent confirmation got there first.
		return uc.PaymentRepo.GetPaymentByID(payment.ID)
	}
	payment.State = domain.StateSucceeded
	payment.SucceededAt = &now

	order, err := uc.OrderRepo.GetOrderByID(payment.OrderID)
	if err != nil {
		return nil, err
	}
	if err := uc.markOrderPaid(order, now); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPayment(payment)
	}
	uc.publish(uc.orderEvent(domain.EventPaymentSucceeded, order))

	return payment, nil
}

// markOrderPaid moves the order-level payment status to paid, stepping a
// failed order through pending first (a succeeded retry).
func (uc *DefaultOrderUsecase) markOrderPaid(order *domain.Order, at time.Time) error {
	if order.PaymentStatus == domain.PaymentFailed {
		if err := uc.OrderRepo.TransitionPaymentStatus(order.ID, domain.PaymentFailed, domain.PaymentPending, at); err != nil {
			return err
		}
		order.PaymentStatus = domain.PaymentPending
	}

	if err := uc.OrderRepo.TransitionPaymentStatus(order.ID, domain.PaymentPending, domain.PaymentPaid, at); err != nil {
		return err
	}
	order.PaymentStatus = domain.PaymentPaid
	order.PaidAt = &at

	return nil
}

// FailPayment records a gateway decline or a bank-verification rejection.
// Idempotent on already-failed attempts.
func (uc *DefaultOrderUsecase) FailPayment(externalRef, reason string) error {
	payment, err := uc.PaymentRepo.GetPaymentByExternalRef(externalRef)
	if err != nil {
		return err
	}

	if payment.State == domain.StateFailed {
		return nil
	}
	if payment.State != domain.StatePending {
		return domain.ErrInvalidStateTransition
	}

	now := uc.Clock()
	if err := uc.PaymentRepo.MarkFailed(payment.ID, reason, now); err != nil {
		return err
	}
	payment.State = domain.StateFailed
	payment.FailureReason = reason

	order, err := uc.OrderRepo.GetOrderByID(payment.OrderID)
	if err != nil {
		return err
	}

	// The order only fails if no other attempt has already paid it.
	if order.PaymentStatus == domain.PaymentPending {
		succeeded, err := uc.PaymentRepo.HasSucceededPayment(order.ID)
		if err != nil {
			return err
		}
		if !succeeded {
			if err := uc.OrderRepo.TransitionPaymentStatus(order.ID, domain.PaymentPending, domain.PaymentFailed, now); err != nil {
				return err
			}
			order.PaymentStatus = domain.PaymentFailed
		}
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordPayment(payment)
	}
	uc.publish(uc.orderEvent(domain.EventPaymentFailed, order))

	return nil
}

// RefundPayment reverses the succeeded attempt of a paid order. For card
// payments the gateway refund is issued first; the lifecycle transition
// is recorded only once the money has actually moved.
func (uc *DefaultOrderUsecase) RefundPayment(orderID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if order.PaymentStatus != domain.PaymentPaid {
		return domain.ErrInvalidStateTransition
	}

	payment := order.SucceededPayment()
	if payment == nil {
		return domain.ErrPaymentNotFound
	}

	if payment.Method == domain.MethodCard {
		status, err := uc.Gateway.VerifySession(payment.ExternalRef)
		if err != nil {
			return fmt.Errorf("failed to resolve payment intent: %w", err)
		}
		if _, err := uc.Gateway.CreateRefund(status.PaymentIntent, payment.Amount); err != nil {
			return fmt.Errorf("gateway refund failed: %w", err)
		}
	}

	now := uc.Clock()
	if err := uc.PaymentRepo.MarkRefunded(payment.ID, now); err != nil {
		return err
	}
	payment.State = domain.StateRefunded

	if err := uc.OrderRepo.TransitionPaymentStatus(order.ID, domain.PaymentPaid, domain.PaymentRefunded, now); err != nil {
		return err
	}
	order.PaymentStatus = domain.PaymentRefunded

	if uc.Metrics != nil {
		uc.Metrics.RecordPayment(payment)
	}
	uc.publish(uc.orderEvent(domain.EventPaymentRefunded, order))

	return nil
}

// VerifyBankReceipt is the admin acknowledgement of a bank transfer. It
// flags the receipt and routes through the same idempotent confirmation
// path card payments use.
func (uc *DefaultOrderUsecase) VerifyBankReceipt(paymentID string) (*domain.Payment, error) {
	payment, err := uc.PaymentRepo.GetPaymentByID(paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Method != domain.MethodBankTransfer {
		return nil, domain.ErrInvalidStateTransition
	}
	if payment.ReceiptPath == "" {
		return nil, domain.ErrReceiptNotVerified
	}

	if !payment.ReceiptVerified {
		if err := uc.PaymentRepo.SetReceiptVerified(payment.ID); err != nil {
			return nil, err
		}
	}

	return uc.ConfirmPayment(payment.ExternalRef)
}
