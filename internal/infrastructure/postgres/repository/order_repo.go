package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/mappers"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.Create(orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrNumberConflict
		}
		return err
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Payments").First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) GetOrderByNumber(number string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.Preload("Payments").First(&order, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	return mappers.ToDomainOrder(&order), nil
}

// statusStampColumn maps a target status to the timestamp column stamped
// on arrival.
func statusStampColumn(to domain.OrderStatus) string {
	switch to {
	case domain.OrderConfirmed:
		return "confirmed_at"
	case domain.OrderInProgress:
		return "started_at"
	case domain.OrderDelivered:
		return "delivered_at"
	case domain.OrderCompleted:
		return "completed_at"
	default:
		return ""
	}
}

func (r *DefaultOrderRepository) TransitionStatus(orderID string, from, to domain.OrderStatus, at time.Time) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": at,
	}
	if col := statusStampColumn(to); col != "" {
		updates[col] = at
	}

	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Either the order is gone or a concurrent transition won.
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultOrderRepository) TransitionPaymentStatus(orderID string, from, to domain.PaymentStatus, at time.Time) error {
	updates := map[string]interface{}{
		"payment_status": to,
		"updated_at":     at,
	}
	if to == domain.PaymentPaid {
		updates["paid_at"] = at
	}

	res := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND payment_status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultOrderRepository) SetDeliveredFile(orderID, filePath string) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("delivered_file", filePath).Error
}

func (r *DefaultOrderRepository) SetAdminNotes(orderID, notes string) error {
	return r.DB.Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Update("admin_notes", notes).Error
}

func (r *DefaultOrderRepository) GetOrdersByCustomerID(customerID string, limit int) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	query := r.DB.Preload("Payments").
		Where("customer_id = ?", customerID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}

func (r *DefaultOrderRepository) ListOrders(
	filters domain.OrderFilters,
	sortBy, sortOrder string,
	page, limit int,
) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	safeSortBy := "created_at"
	switch sortBy {
	case "total_amount":
		safeSortBy = "total_amount"
	case "deadline":
		safeSortBy = "deadline"
	case "created_at":
		safeSortBy = "created_at"
	}

	safeSortOrder := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		safeSortOrder = "ASC"
	}

	baseQuery := r.DB.Model(&models.OrderModel{})

	if filters.CustomerID != "" {
		baseQuery = baseQuery.Where("customer_id = ?", filters.CustomerID)
	}
	if filters.Number != "" {
		baseQuery = baseQuery.Where("number = ?", filters.Number)
	}
	if filters.ServiceType != "" {
		baseQuery = baseQuery.Where("service_type = ?", filters.ServiceType)
	}
	if filters.Status != "" {
		baseQuery = baseQuery.Where("status = ?", filters.Status)
	}
	if filters.PaymentStatus != "" {
		baseQuery = baseQuery.Where("payment_status = ?", filters.PaymentStatus)
	}
	if !filters.CreatedFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.CreatedFrom)
	}
	if !filters.CreatedTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.CreatedTo)
	}
	if filters.AmountMin > 0 {
		baseQuery = baseQuery.Where("total_amount >= ?", filters.AmountMin)
	}
	if filters.AmountMax > 0 {
		baseQuery = baseQuery.Where("total_amount <= ?", filters.AmountMax)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Payments").
		Order(fmt.Sprintf("%s %s", safeSortBy, safeSortOrder)).
		Offset(offset).
		Limit(limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, total, nil
}

func (r *DefaultOrderRepository) FindExpiredPending(olderThan time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	if err := r.DB.Preload("Payments").
		Where("status = ?", domain.OrderPending).
		Where("payment_status = ?", domain.PaymentPending).
		Where("created_at < ?", olderThan).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}

	return orders, nil
}

func (r *DefaultOrderRepository) GetOrderStatistics(dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	var stats domain.OrderStatistics

	baseQuery := func() *gorm.DB {
		return r.DB.
			Model(&models.OrderModel{}).
			Where("created_at BETWEEN ? AND ?", dateFrom, dateTo)
	}

	if err := baseQuery().Count(&stats.TotalOrders).Error; err != nil {
		return nil, fmt.Errorf("count total orders: %w", err)
	}

	if err := baseQuery().
		Where("status = ?", domain.OrderCompleted).
		Count(&stats.CompletedOrders).Error; err != nil {
		return nil, fmt.Errorf("count completed orders: %w", err)
	}

	type paidAgg struct {
		Count  int64
		SumUSD float64
	}
	var paid paidAgg
	if err := baseQuery().
		Where("payment_status = ?", domain.PaymentPaid).
		Select("COUNT(*) as count, COALESCE(SUM(total_amount_usd), 0) as sum_usd").
		Scan(&paid).Error; err != nil {
		return nil, fmt.Errorf("paid agg: %w", err)
	}
	stats.PaidOrders = paid.Count
	stats.RevenueUSD = paid.SumUSD

	type cancelAgg struct {
		Count  int64
		SumUSD float64
	}
	var canc cancelAgg
	if err := baseQuery().
		Where("status = ?", domain.OrderCancelled).
		Select("COUNT(*) as count, COALESCE(SUM(total_amount_usd), 0) as sum_usd").
		Scan(&canc).Error; err != nil {
		return nil, fmt.Errorf("cancelled agg: %w", err)
	}
	stats.CancelledOrders = canc.Count
	stats.CancelledUSD = canc.SumUSD

	return &stats, nil
}
