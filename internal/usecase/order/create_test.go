package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	orderdto "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreateInput(deadline time.Time) *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		CustomerID:    "cust-1",
		ServiceType:   domain.ServiceAssignment,
		AcademicLevel: domain.LevelBachelor,
		Subject:       "Operating systems",
		Requirements:  "Ten pages on scheduling",
		Deadline:      deadline,
		Currency:      "USD",
	}
}

func TestCreateOrder_SnapshotsPricing(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.Clock = func() time.Time { return now }

	order, err := uc.CreateOrder(testCreateInput(now.Add(30 * time.Hour)))
	require.NoError(t, err)

	// 20 * 1.2 * 2.0: one day until the deadline hits the 24h tier.
	assert.Equal(t, 20.0, order.Pricing.BasePrice)
	assert.Equal(t, 1.2, order.Pricing.AcademicMultiplier)
	assert.Equal(t, 2.0, order.Pricing.UrgencyMultiplier)
	assert.Equal(t, 48.0, order.Pricing.TotalAmount)
	assert.Equal(t, 48.0, order.Pricing.TotalAmountUSD)
	assert.Equal(t, "USD", order.Pricing.Currency)

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Equal(t, "ORD-20250310-0001", order.Number)
}

func TestCreateOrder_RejectsPastDeadline(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.Clock = func() time.Time { return now }

	_, err := uc.CreateOrder(testCreateInput(now.Add(-time.Hour)))
	assert.ErrorIs(t, err, domain.ErrDeadlineNotFuture)

	_, err = uc.CreateOrder(testCreateInput(now))
	assert.ErrorIs(t, err, domain.ErrDeadlineNotFuture)
}

func TestCreateOrder_RejectsUnknownInputs(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.Clock = func() time.Time { return now }
	deadline := now.Add(7 * 24 * time.Hour)

	input := testCreateInput(deadline)
	input.ServiceType = "thesis"
	_, err := uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrInvalidServiceType)

	input = testCreateInput(deadline)
	input.AcademicLevel = "postdoc"
	_, err = uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrInvalidAcademicLevel)

	input = testCreateInput(deadline)
	input.Currency = "EUR"
	_, err = uc.CreateOrder(input)
	assert.ErrorIs(t, err, domain.ErrInvalidCurrency)
}

func TestCreateOrder_ConcurrentNumbersAreDistinct(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.Clock = func() time.Time { return now }
	deadline := now.Add(7 * 24 * time.Hour)

	const n = 64
	var wg sync.WaitGroup
	numbers := make(chan string, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			input := testCreateInput(deadline)
			input.CustomerID = fmt.Sprintf("cust-%d", i)
			order, err := uc.CreateOrder(input)
			if err != nil {
				t.Errorf("create order: %v", err)
				return
			}
			numbers <- order.Number
		}(i)
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for number := range numbers {
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
}
