package usecase

import (
	"context"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/logger"
)

// CancelOrder cancels a not-yet-completed order. A paid order can only be
// cancelled once a refund has been recorded; silently dropping paid work
// was a real inconsistency in the old system.
func (uc *DefaultOrderUsecase) CancelOrder(orderID, reason string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(domain.OrderCancelled) {
		return domain.ErrInvalidStateTransition
	}

	if order.PaymentStatus == domain.PaymentPaid && !order.Refunded() {
		return domain.ErrCancelRequiresRefund
	}

	now := uc.Clock()
	if err := uc.OrderRepo.TransitionStatus(orderID, order.Status, domain.OrderCancelled, now); err != nil {
		return err
	}

	order.Status = domain.OrderCancelled
	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCancelled(order, reason)
	}
	uc.publish(uc.orderEvent(domain.EventOrderCancelled, order))

	return nil
}

// CancelExpiredOrders sweeps pending orders whose payment never arrived
// within the expiry window. Failures on individual orders are logged and
// the sweep moves on.
func (uc *DefaultOrderUsecase) CancelExpiredOrders(ctx context.Context) error {
	cutoff := uc.Clock().Add(-uc.ExpiryWindow)
	orders, err := uc.OrderRepo.FindExpiredPending(cutoff)
	if err != nil {
		return err
	}

	for _, order := range orders {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := uc.CancelOrder(order.ID, "expired"); err != nil {
			logger.Get().Warnw("failed to cancel expired order",
				"order_id", order.ID, "number", order.Number, "error", err.Error())
			continue
		}
		logger.Get().Infow("order cancelled due to payment timeout",
			"order_id", order.ID, "number", order.Number)
	}

	return nil
}
