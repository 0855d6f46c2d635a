package domain

import "time"

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	GetOrderByNumber(number string) (*Order, error)
	// TransitionStatus applies a guarded status write: the update only
	// lands if the row still holds the expected previous status, so two
	// concurrent transitions cannot both win. Returns
	// ErrInvalidStateTransition when the guard misses.
	TransitionStatus(orderID string, from, to OrderStatus, at time.Time) error
	TransitionPaymentStatus(orderID string, from, to PaymentStatus, at time.Time) error
	SetDeliveredFile(orderID, filePath string) error
	SetAdminNotes(orderID, notes string) error
	GetOrdersByCustomerID(customerID string, limit int) ([]*Order, error)
	ListOrders(filters OrderFilters, sortBy, sortOrder string, page, limit int) ([]*Order, int64, error)
	FindExpiredPending(olderThan time.Time) ([]*Order, error)
	GetOrderStatistics(dateFrom, dateTo time.Time) (*OrderStatistics, error)
}

// OrderNumberAllocator hands out per-day sequence values atomically.
// Two concurrent allocations for the same day must never observe the
// same value; counting rows at request time is exactly the race this
// interface exists to forbid.
type OrderNumberAllocator interface {
	NextSequence(day time.Time) (int64, error)
}
