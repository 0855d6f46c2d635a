package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, uc *DefaultOrderUsecase) *domain.Order {
	t.Helper()
	now := uc.Clock()
	order, err := uc.CreateOrder(testCreateInput(now.Add(7 * 24 * time.Hour)))
	require.NoError(t, err)
	return order
}

func TestUpdateOrderStatus_WalksTheLifecycle(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()
	order := createTestOrder(t, uc)

	require.NoError(t, uc.UpdateOrderStatus(order.ID, domain.OrderConfirmed))
	require.NoError(t, uc.UpdateOrderStatus(order.ID, domain.OrderInProgress))

	require.NoError(t, uc.MarkDelivered(order.ID, "files/final.pdf"))
	require.NoError(t, uc.UpdateOrderStatus(order.ID, domain.OrderCompleted))

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCompleted, stored.Status)
	assert.Equal(t, "files/final.pdf", stored.DeliveredFile)
}

func TestUpdateOrderStatus_RejectsSkippedStates(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	order := createTestOrder(t, uc)

	err := uc.UpdateOrderStatus(order.ID, domain.OrderInProgress)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)

	err = uc.UpdateOrderStatus(order.ID, domain.OrderCompleted)
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestUpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	order := createTestOrder(t, uc)

	err := uc.UpdateOrderStatus(order.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition)
}

func TestUpdateOrderStatus_DeliveredNeedsFile(t *testing.T) {
	uc, _, _, _ := newTestUsecase()
	order := createTestOrder(t, uc)

	require.NoError(t, uc.UpdateOrderStatus(order.ID, domain.OrderConfirmed))
	require.NoError(t, uc.UpdateOrderStatus(order.ID, domain.OrderInProgress))

	err := uc.UpdateOrderStatus(order.ID, domain.OrderDelivered)
	assert.ErrorIs(t, err, domain.ErrDeliveredFileMissing)

	err = uc.MarkDelivered(order.ID, "")
	assert.ErrorIs(t, err, domain.ErrDeliveredFileMissing)
}

func TestCancelOrder_TerminalStatesStayPut(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()
	order := createTestOrder(t, uc)

	require.NoError(t, uc.CancelOrder(order.ID, "customer"))

	stored, err := repo.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, stored.Status)

	// Cancelled is terminal, so a second cancel and any other move fail.
	assert.ErrorIs(t, uc.CancelOrder(order.ID, "customer"), domain.ErrInvalidStateTransition)
	assert.ErrorIs(t, uc.UpdateOrderStatus(order.ID, domain.OrderConfirmed), domain.ErrInvalidStateTransition)
}

func TestCancelExpiredOrders_SweepsOnlyStalePending(t *testing.T) {
	uc, repo, _, _ := newTestUsecase()
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	uc.Clock = func() time.Time { return base.Add(-4 * 24 * time.Hour) }
	stale := createTestOrder(t, uc)

	uc.Clock = func() time.Time { return base.Add(-time.Hour) }
	fresh := createTestOrder(t, uc)

	uc.Clock = func() time.Time { return base }
	require.NoError(t, uc.CancelExpiredOrders(context.Background()))

	staleStored, err := repo.GetOrderByID(stale.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderCancelled, staleStored.Status)

	freshStored, err := repo.GetOrderByID(fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, freshStored.Status)
}
