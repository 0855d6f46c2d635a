package usecase

import (
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	orderdto "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/dto/order"
)

func (uc *DefaultOrderUsecase) GetOrderByID(orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(orderID)
}

func (uc *DefaultOrderUsecase) GetOrderByNumber(number string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByNumber(number)
}

func (uc *DefaultOrderUsecase) GetOrdersByCustomerID(customerID string, limit int) ([]*domain.Order, error) {
	return uc.OrderRepo.GetOrdersByCustomerID(customerID, limit)
}

func (uc *DefaultOrderUsecase) ListOrders(input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.OrderRepo.ListOrders(input.Filters, input.SortBy, input.SortOrder, input.Page, limit)
}

func (uc *DefaultOrderUsecase) GetOrderStatistics(dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	return uc.OrderRepo.GetOrderStatistics(dateFrom, dateTo)
}

func (uc *DefaultOrderUsecase) SetAdminNotes(orderID, notes string) error {
	if _, err := uc.OrderRepo.GetOrderByID(orderID); err != nil {
		return err
	}
	return uc.OrderRepo.SetAdminNotes(orderID, notes)
}
