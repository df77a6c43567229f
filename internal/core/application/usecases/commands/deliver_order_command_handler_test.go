package commands_test

import (
	"testing"
	"time"

	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sentOrder(t *testing.T, orderID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	o := testPendingOrder(t, orderID, kernel.NewUUID(), restaurantID)
	require.NoError(t, o.Start(time.Now().Add(-30*time.Minute)))
	require.NoError(t, o.Send(time.Now().Add(-10*time.Minute)))
	return o
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	o := sentOrder(t, orderID, restaurantID)

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()
	orderRepo.On("UpdateFulfillment", ctx, o).Return(nil).Once()
	orderRepo.On("AverageServiceMinutes", ctx, restaurantID).Return(42.5, true, nil).Once()

	restaurantRepo := new(MockRestaurantRepository)
	restaurantRepo.On("UpdateAverageServiceMinutes", ctx, restaurantID, 42.5).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("RestaurantRepository").Return(restaurantRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockOrderEventPublisher)
	publisher.On("PublishOrderChanged", ctx, mock.MatchedBy(func(event ports.OrderChangedEvent) bool {
		return event.Status == "delivered" && event.RestaurantID == restaurantID.String()
	})).Return(nil).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, publisher)
	delivered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	require.NotNil(t, delivered.DeliveredAt())

	orderRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotSent(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	o := testPendingOrder(t, orderID, kernel.NewUUID(), kernel.NewUUID())

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot deliver")
	orderRepo.AssertNotCalled(t, "AverageServiceMinutes", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_NoDeliveredOrdersSkipsAverage(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	o := sentOrder(t, orderID, restaurantID)

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, orderID).Return(o, nil).Once()
	orderRepo.On("UpdateFulfillment", ctx, o).Return(nil).Once()
	orderRepo.On("AverageServiceMinutes", ctx, restaurantID).Return(0.0, false, nil).Once()

	restaurantRepo := new(MockRestaurantRepository)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	restaurantRepo.AssertNotCalled(t, "UpdateAverageServiceMinutes",
		mock.Anything, mock.Anything, mock.Anything)
}
