package commands

import (
	"context"
	"fmt"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves catalog prices, computes shipping and total, and persists the
// order header together with its lines as one atomic unit of work. If any
// step fails the whole unit is rolled back; no partial order or orphan
// lines are ever visible to other readers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	fmt.Printf("order %s placed, total %s", created.ID(), created.Price())
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PricingCalculator
	publisher  ports.OrderEventPublisher
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when event publication is disabled.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPricingCalculator(),
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle processes the order placement command.
//
// All reads and writes share one transaction: the restaurant and product
// lookups, the pricing computation, and the order + line inserts. On
// success the order is re-read after commit so the returned aggregate
// reflects exactly what is durably stored.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
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

	lines, pricing, err := resolvePricing(ctx, uow, h.calculator, cmd.RestaurantID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.RestaurantID(),
		h.now(),
		pricing.ShippingCosts,
		lines,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Post-commit re-read: the repository is no longer transaction-bound,
	// so this returns the durably stored state, not the in-memory object.
	// At this point the order is already committed, so a re-read failure
	// is flagged as such rather than surfaced as a plain error.
	created, err := uow.OrderRepository().Get(ctx, newOrder.ID())
	if err != nil {
		return nil, fmt.Errorf("order created but re-read failed: %w", err)
	}

	publishOrderChanged(ctx, h.publisher, created)
	return created, nil
}
