package usecase

import (
	"context"
	"log"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/metrics"
	"github.com/bu6wer8/student-services-V4-Docker/internal/logger"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	orderdto "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/dto/order"
	"github.com/jaevor/go-nanoid"
)

type OrderUsecase interface {
	Quote(service domain.ServiceType, level domain.AcademicLevel, daysUntilDeadline int, currency string) (*pricing.Breakdown, error)
	CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error)

	UpdateOrderStatus(orderID string, newStatus domain.OrderStatus) error
	MarkDelivered(orderID, filePath string) error
	SetAdminNotes(orderID, notes string) error
	CancelOrder(orderID, reason string) error
	CancelExpiredOrders(ctx context.Context) error

	StartCardPayment(orderID, customerEmail string) (*domain.CheckoutSession, error)
	ConfirmPayment(externalRef string) (*domain.Payment, error)
	FailPayment(externalRef, reason string) error
	RefundPayment(orderID string) error
	SubmitBankReceipt(orderID, receiptPath string) (*domain.Payment, error)
	VerifyBankReceipt(paymentID string) (*domain.Payment, error)

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrderByNumber(number string) (*domain.Order, error)
	GetOrdersByCustomerID(customerID string, limit int) ([]*domain.Order, error)
	ListOrders(input *orderdto.ListOrdersInput) ([]*domain.Order, int64, error)
	GetOrderStatistics(dateFrom, dateTo time.Time) (*domain.OrderStatistics, error)
}

const bankRefAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	PaymentRepo  domain.PaymentRepository
	Allocator    domain.OrderNumberAllocator
	Pricing      *pricing.Engine
	Gateway      domain.PaymentGateway
	Publisher    domain.OrderEventPublisher
	Metrics      *metrics.OrderMetrics
	ExpiryWindow time.Duration

	// Clock is injected so lifecycle timestamps are replayable in tests.
	Clock func() time.Time

	bankRef func() string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	paymentRepo domain.PaymentRepository,
	allocator domain.OrderNumberAllocator,
	pricingEngine *pricing.Engine,
	gateway domain.PaymentGateway,
	publisher domain.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	expiryWindow time.Duration) *DefaultOrderUsecase {

	bankRefGen, err := nanoid.CustomASCII(bankRefAlphabet, 12)
	if err != nil {
		log.Fatalf("failed to init bank reference generator: %v", err)
	}

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		PaymentRepo:  paymentRepo,
		Allocator:    allocator,
		Pricing:      pricingEngine,
		Gateway:      gateway,
		Publisher:    publisher,
		Metrics:      orderMetrics,
		ExpiryWindow: expiryWindow,
		Clock:        time.Now,
		bankRef:      bankRefGen,
	}
}

// publish pushes an event for the notification worker. Transitions are
// committed first; a failed publish is logged and never propagated.
func (uc *DefaultOrderUsecase) publish(event domain.OrderEvent) {
	if uc.Publisher == nil {
		return
	}
	go func() {
		if err := uc.Publisher.PublishOrderEvent(event); err != nil {
			logger.Get().Errorw("failed to publish order event",
				"type", event.Type, "order_id", event.OrderID, "error", err.Error())
		}
	}()
}

func (uc *DefaultOrderUsecase) orderEvent(eventType domain.OrderEventType, order *domain.Order) domain.OrderEvent {
	return domain.OrderEvent{
		Type:          eventType,
		OrderID:       order.ID,
		OrderNumber:   order.Number,
		CustomerID:    order.CustomerID,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		Amount:        order.Pricing.TotalAmount,
		Currency:      order.Pricing.Currency,
		OccurredAt:    uc.Clock(),
	}
}
