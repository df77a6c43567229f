package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
)

// DeliverOrderCommandHandler applies the Sent -> Delivered transition and
// refreshes the owning restaurant's average service time.
//
// The average is recomputed from the full set of delivered orders inside
// the same transaction, never incremented, so concurrent deliveries for the
// same restaurant converge regardless of write order. The periodic refresh
// job re-runs the same computation as a repair loop.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewDeliverOrderCommandHandler creates a handler for delivering orders.
// The publisher may be nil when event publication is disabled.
func NewDeliverOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle stamps the delivery time, recomputes the restaurant's average
// service minutes, and returns the updated order.
func (h DeliverOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverOrderCommand,
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

	if err = o.Deliver(h.now()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateFulfillment(ctx, o); err != nil {
		return nil, err
	}

	minutes, ok, err := orderRepo.AverageServiceMinutes(ctx, o.RestaurantID())
	if err != nil {
		return nil, err
	}
	if ok {
		if err = uow.RestaurantRepository().UpdateAverageServiceMinutes(ctx, o.RestaurantID(), minutes); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	publishOrderChanged(ctx, h.publisher, o)
	return o, nil
}
