package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
)

// SendOrderCommandHandler applies the InProcess -> Sent transition.
// Sending an order that was never started, or that is already sent or
// delivered, is rejected as a validation error.
type SendOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewSendOrderCommandHandler creates a handler for sending orders.
// The publisher may be nil when event publication is disabled.
func NewSendOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) SendOrderCommandHandler {
	return SendOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle stamps the order's dispatch time and returns the updated order.
func (h SendOrderCommandHandler) Handle(
	ctx context.Context,
	cmd SendOrderCommand,
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

	if err = o.Send(h.now()); err != nil {
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
