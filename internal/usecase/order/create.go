package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	orderdto "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

// Quote computes a price breakdown without touching any state.
func (uc *DefaultOrderUsecase) Quote(service domain.ServiceType, level domain.AcademicLevel, daysUntilDeadline int, currency string) (*pricing.Breakdown, error) {
	breakdown, err := uc.Pricing.Quote(service, level, daysUntilDeadline, currency)
	if err != nil {
		uc.recordQuoteError(err)
		return nil, err
	}
	return breakdown, nil
}

func (uc *DefaultOrderUsecase) recordQuoteError(err error) {
	if uc.Metrics == nil {
		return
	}
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrInvalidServiceType):
		reason = "service_type"
	case errors.Is(err, domain.ErrInvalidAcademicLevel):
		reason = "academic_level"
	case errors.Is(err, domain.ErrInvalidCurrency):
		reason = "currency"
	}
	uc.Metrics.RecordQuoteError(reason)
}

// CreateOrder prices the request, snapshots the breakdown and persists a
// pending order under a freshly allocated order number. The quote is
// computed exactly once; nothing ever recomputes the snapshot.
func (uc *DefaultOrderUsecase) CreateOrder(input *orderdto.CreateOrderInput) (*domain.Order, error) {
	now := uc.Clock()

	if !input.Deadline.After(now) {
		return nil, domain.ErrDeadlineNotFuture
	}

	days := pricing.DaysUntil(now, input.Deadline)
	breakdown, err := uc.Quote(input.ServiceType, input.AcademicLevel, days, input.Currency)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		CustomerID:    input.CustomerID,
		ServiceType:   input.ServiceType,
		AcademicLevel: input.AcademicLevel,
		Subject:       input.Subject,
		Requirements:  input.Requirements,
		SpecialNotes:  input.SpecialNotes,
		Deadline:      input.Deadline,
		Pricing: domain.PricingSnapshot{
			BasePrice:          breakdown.BasePrice,
			AcademicMultiplier: breakdown.AcademicMultiplier,
			UrgencyMultiplier:  breakdown.UrgencyMultiplier,
			TotalAmount:        breakdown.TotalPrice,
			TotalAmountUSD:     breakdown.TotalPriceUSD,
			Currency:           breakdown.Currency,
		},
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// The allocator is atomic, so a conflict only happens if something
	// out of band grabbed the same number. Bounded retry absorbs it.
	backoff := retry.WithMaxRetries(3, retry.NewConstant(20*time.Millisecond))
	err = retry.Do(context.Background(), backoff, func(ctx context.Context) error {
		seq, err := uc.Allocator.NextSequence(now)
		if err != nil {
			return err
		}
		order.Number = fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), seq)

		if err := uc.OrderRepo.CreateOrder(order); err != nil {
			if errors.Is(err, domain.ErrNumberConflict) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordOrderCreated(order)
	}
	uc.publish(uc.orderEvent(domain.EventOrderCreated, order))

	return order, nil
}
