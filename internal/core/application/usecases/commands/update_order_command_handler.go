package commands

import (
	"context"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
)

// UpdateOrderCommandHandler handles full replacement of an order's contents.
// Pricing is recomputed exactly as on creation, and the header update plus
// the remove-then-insert of lines happen inside one transaction, so an
// observer can never see the order with zero or mixed lines. Failure
// anywhere leaves the prior state fully intact.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.PricingCalculator
}

// NewUpdateOrderCommandHandler creates a handler for order updates.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewPricingCalculator(),
	}
}

// Handle processes the order update command and returns the re-read,
// durably stored order.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderCommand,
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
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	lines, pricing, err := resolvePricing(ctx, uow, h.calculator, existing.RestaurantID(), cmd.Items())
	if err != nil {
		return nil, err
	}

	if err = existing.ReplaceLines(lines, pricing.ShippingCosts); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return uow.OrderRepository().Get(ctx, existing.ID())
}
