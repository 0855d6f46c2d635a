package domain

import "time"

type ServiceType string

const (
	ServiceAssignment   ServiceType = "assignment"
	ServiceProject      ServiceType = "project"
	ServicePresentation ServiceType = "presentation"
	ServiceRedesign     ServiceType = "redesign"
	ServiceSummary      ServiceType = "summary"
	ServiceExpress      ServiceType = "express"
)

type AcademicLevel string

const (
	LevelHighSchool AcademicLevel = "high_school"
	LevelBachelor   AcademicLevel = "bachelor"
	LevelMasters    AcademicLevel = "masters"
	LevelPhD        AcademicLevel = "phd"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderInProgress OrderStatus = "in_progress"
	OrderDelivered  OrderStatus = "delivered"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// PaymentStatus is the order-level payment state, tracked independently of
// the order status: a bank-transfer order can be confirmed before the money
// clears, a card order can be paid before anyone confirms it.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// PricingSnapshot is written once at order creation and never recomputed.
// Later changes to the price tables must not touch existing orders.
type PricingSnapshot struct {
	BasePrice          float64
	AcademicMultiplier float64
	UrgencyMultiplier  float64
	TotalAmount        float64
	TotalAmountUSD     float64
	Currency           string
}

type Order struct {
	ID            string
	Number        string
	CustomerID    string
	ServiceType   ServiceType
	AcademicLevel AcademicLevel
	Subject       string
	Requirements  string
	SpecialNotes  string
	Deadline      time.Time
	Pricing       PricingSnapshot
	Status        OrderStatus
	PaymentStatus PaymentStatus
	DeliveredFile string
	AdminNotes    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ConfirmedAt   *time.Time
	PaidAt        *time.Time
	StartedAt     *time.Time
	DeliveredAt   *time.Time
	CompletedAt   *time.Time
	Payments      []*Payment
}

type OrderFilters struct {
	CustomerID    string
	Number        string
	ServiceType   ServiceType
	Status        OrderStatus
	PaymentStatus PaymentStatus
	CreatedFrom   time.Time
	CreatedTo     time.Time
	AmountMin     float64
	AmountMax     float64
}

type OrderStatistics struct {
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	PaidOrders      int64
	RevenueUSD      float64
	CancelledUSD    float64
}
