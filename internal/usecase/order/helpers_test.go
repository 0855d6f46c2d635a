package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
)

func testPricingTables() pricing.Tables {
	return pricing.Tables{
		BasePrices: map[domain.ServiceType]float64{
			domain.ServiceAssignment:   20,
			domain.ServiceProject:      50,
			domain.ServicePresentation: 30,
			domain.ServiceRedesign:     25,
			domain.ServiceSummary:      15,
			domain.ServiceExpress:      50,
		},
		AcademicMultipliers: pricing.DefaultAcademicMultipliers(),
		CurrencyRates: map[string]float64{
			"USD": 1.0,
			"JOD": 0.71,
			"AED": 3.67,
			"SAR": 3.75,
		},
		Urgency24h: 2.0,
	}
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *fakeOrderRepo) CreateOrder(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.Number == order.Number {
			return domain.ErrNumberConflict
		}
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) GetOrderByNumber(number string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, order := range r.orders {
		if order.Number == number {
			clone := *order
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *fakeOrderRepo) TransitionStatus(orderID string, from, to domain.OrderStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.Status != from {
		return domain.ErrInvalidStateTransition
	}
	order.Status = to
	order.UpdatedAt = at
	return nil
}

func (r *fakeOrderRepo) TransitionPaymentStatus(orderID string, from, to domain.PaymentStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if order.PaymentStatus != from {
		return domain.ErrInvalidStateTransition
	}
	order.PaymentStatus = to
	order.UpdatedAt = at
	if to == domain.PaymentPaid {
		order.PaidAt = &at
	}
	return nil
}

func (r *fakeOrderRepo) SetDeliveredFile(orderID, filePath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.DeliveredFile = filePath
	return nil
}

func (r *fakeOrderRepo) SetAdminNotes(orderID, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.AdminNotes = notes
	return nil
}

func (r *fakeOrderRepo) GetOrdersByCustomerID(customerID string, limit int) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.orders {
		if order.CustomerID == customerID {
			clone := *order
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) ListOrders(filters domain.OrderFilters, sortBy, sortOrder string, page, limit int) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.orders {
		if filters.Status != "" && order.Status != filters.Status {
			continue
		}
		clone := *order
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) FindExpiredPending(olderThan time.Time) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Order
	for _, order := range r.orders {
		if order.Status == domain.OrderPending &&
			order.PaymentStatus == domain.PaymentPending &&
			order.CreatedAt.Before(olderThan) {
			clone := *order
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) GetOrderStatistics(dateFrom, dateTo time.Time) (*domain.OrderStatistics, error) {
	return &domain.OrderStatistics{}, nil
}

// setPayments attaches attempts so Order.Refunded and SucceededPayment
// see them on the next read.
func (r *fakeOrderRepo) setPayments(orderID string, payments []*domain.Payment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order, ok := r.orders[orderID]; ok {
		order.Payments = payments
	}
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*domain.Payment)}
}

func (r *fakePaymentRepo) CreatePayment(payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payments {
		if existing.ExternalRef == payment.ExternalRef {
			return domain.ErrDuplicatePayment
		}
	}
	clone := *payment
	r.payments[payment.ID] = &clone
	return nil
}

func (r *fakePaymentRepo) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, domain.ErrPaymentNotFound
	}
	clone := *payment
	return &clone, nil
}

func (r *fakePaymentRepo) GetPaymentByExternalRef(externalRef string) (*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, payment := range r.payments {
		if payment.ExternalRef == externalRef {
			clone := *payment
			return &clone, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *fakePaymentRepo) GetPaymentsByOrderID(orderID string) ([]*domain.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.Payment
	for _, payment := range r.payments {
		if payment.OrderID == orderID {
			clone := *payment
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakePaymentRepo) MarkSucceeded(paymentID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return false, domain.ErrPaymentNotFound
	}
	if payment.State != domain.StatePending {
		return false, nil
	}
	payment.State = domain.StateSucceeded
	payment.SucceededAt = &at
	payment.UpdatedAt = at
	return true, nil
}

func (r *fakePaymentRepo) MarkFailed(paymentID, reason string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.State = domain.StateFailed
	payment.FailureReason = reason
	payment.FailedAt = &at
	payment.UpdatedAt = at
	return nil
}

func (r *fakePaymentRepo) MarkRefunded(paymentID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.State = domain.StateRefunded
	payment.UpdatedAt = at
	return nil
}

func (r *fakePaymentRepo) SetReceipt(paymentID, receiptPath string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.ReceiptPath = receiptPath
	return nil
}

func (r *fakePaymentRepo) SetReceiptVerified(paymentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment, ok := r.payments[paymentID]
	if !ok {
		return domain.ErrPaymentNotFound
	}
	payment.ReceiptVerified = true
	return nil
}

func (r *fakePaymentRepo) HasSucceededPayment(orderID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, payment := range r.payments {
		if payment.OrderID == orderID && payment.State == domain.StateSucceeded {
			return true, nil
		}
	}
	return false, nil
}

type fakeAllocator struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{counters: make(map[string]int64)}
}

func (a *fakeAllocator) NextSequence(day time.Time) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key := day.Format("20060102")
	a.counters[key]++
	return a.counters[key], nil
}

type fakeGateway struct {
	mu        sync.Mutex
	sessions  int
	refunds   int
	refundErr error
}

func (g *fakeGateway) CreateCheckoutSession(orderNumber string, amount float64, currency, description, customerEmail string) (*domain.CheckoutSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sessions++
	return &domain.CheckoutSession{
		ID:  fmt.Sprintf("cs_test_%d", g.sessions),
		URL: "https://gateway.test/checkout",
	}, nil
}

func (g *fakeGateway) VerifySession(sessionID string) (*domain.SessionStatus, error) {
	return &domain.SessionStatus{Paid: true, PaymentIntent: "pi_" + sessionID}, nil
}

func (g *fakeGateway) CreateRefund(paymentIntent string, amount float64) (*domain.RefundResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.refundErr != nil {
		return nil, g.refundErr
	}
	g.refunds++
	return &domain.RefundResult{RefundID: "re_test", Amount: amount}, nil
}

func newTestUsecase() (*DefaultOrderUsecase, *fakeOrderRepo, *fakePaymentRepo, *fakeGateway) {
	orderRepo := newFakeOrderRepo()
	paymentRepo := newFakePaymentRepo()
	gateway := &fakeGateway{}

	uc := NewDefaultOrderUsecase(
		orderRepo,
		paymentRepo,
		newFakeAllocator(),
		pricing.NewEngine(testPricingTables()),
		gateway,
		nil,
		nil,
		72*time.Hour,
	)
	return uc, orderRepo, paymentRepo, gateway
}
