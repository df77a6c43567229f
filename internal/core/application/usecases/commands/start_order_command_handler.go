package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
)

// StartOrderCommandHandler applies the Pending -> InProcess transition.
// The transition is guarded: starting an order that is already in process,
// sent or delivered is rejected as a validation error.
type StartOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewStartOrderCommandHandler creates a handler for starting orders.
// The publisher may be nil when event publication is disabled.
func NewStartOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) StartOrderCommandHandler {
	return StartOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle stamps the order's preparation start time and returns the updated
// order.
func (h StartOrderCommandHandler) Handle(
	ctx context.Context,
	cmd StartOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Start(h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFulfillment(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderChanged(ctx, h.publisher, o)
	return o, nil
}
