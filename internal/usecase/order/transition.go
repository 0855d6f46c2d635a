package usecase

import "github.com/bu6wer8/student-services-V4-Docker/internal/domain"

// UpdateOrderStatus applies an admin-driven lifecycle transition. Unlike
// the old dashboard, the new status is validated against the transition
// table before anything is written: free-assigning a status from request
// input is exactly the class of bug this boundary exists to stop.
func (uc *DefaultOrderUsecase) UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error {
	if !newStatus.Valid() {
		return domain.ErrInvalidStateTransition
	}

	// Cancellation carries its own refund precondition.
	if newStatus == domain.OrderCancelled {
		return uc.CancelOrder(orderID, "admin")
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(newStatus) {
		return domain.ErrInvalidStateTransition
	}
	if newStatus == domain.OrderDelivered && order.DeliveredFile == "" {
		return domain.ErrDeliveredFileMissing
	}

	now := uc.Clock()
	if err := uc.OrderRepo.TransitionStatus(orderID, order.Status, newStatus, now); err != nil {
		return err
	}

	order.Status = newStatus
	if newStatus == domain.OrderCompleted {
		order.CompletedAt = &now
		if uc.Metrics != nil {
			uc.Metrics.RecordOrderCompleted(order)
		}
	}

	uc.publish(uc.orderEvent(domain.EventOrderStatus, order))

	return nil
}

// MarkDelivered records the finished work file and moves the order to
// delivered. The artifact reference is the precondition for the
// transition, so it is written before the guarded status update.
func (uc *DefaultOrderUsecase) MarkDelivered(orderID, filePath string) error {
	if filePath == "" {
		return domain.ErrDeliveredFileMissing
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(domain.OrderDelivered) {
		return domain.ErrInvalidStateTransition
	}

	if err := uc.OrderRepo.SetDeliveredFile(orderID, filePath); err != nil {
		return err
	}

	now := uc.Clock()
	if err := uc.OrderRepo.TransitionStatus(orderID, order.Status, domain.OrderDelivered, now); err != nil {
		return err
	}

	order.Status = domain.OrderDelivered
	order.DeliveredFile = filePath
	uc.publish(uc.orderEvent(domain.EventOrderStatus, order))

	return nil
}
