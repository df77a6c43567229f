package commands

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
	"foodorders/internal/core/ports"

	"github.com/shopspring/decimal"
)

// resolvePricing loads the restaurant's shipping default and the current
// catalog prices for the requested items, then runs the pricing calculator.
// Both reads go through repositories bound to the caller's transaction, so
// the price snapshot is internally consistent even if the catalog changes
// mid-request.
func resolvePricing(
	ctx context.Context,
	catalogs CatalogRepoFactory,
	calculator services.PricingCalculator,
	restaurantID kernel.UUID,
	items []LineItem,
) ([]order.Line, services.Pricing, error) {
	restaurant, err := catalogs.RestaurantRepository().Get(ctx, restaurantID)
	if err != nil {
		return nil, services.Pricing{}, err
	}

	ids := make([]kernel.UUID, len(items))
	for i, item := range items {
		ids[i] = item.ProductID()
	}

	products, err := catalogs.ProductRepository().GetByIDs(ctx, ids)
	if err != nil {
		return nil, services.Pricing{}, err
	}

	prices := make(map[kernel.UUID]decimal.Decimal, len(products))
	for _, product := range products {
		prices[product.ID()] = product.Price()
	}

	lookup := func(productID kernel.UUID) (decimal.Decimal, bool) {
		price, ok := prices[productID]
		return price, ok
	}

	return calculator.Calculate(toPricingInputs(items), restaurant.DefaultShippingCosts(), lookup)
}

// publishOrderChanged emits an order lifecycle event after a successful
// commit. Best effort: the order is already durable, so publish failures
// are dropped rather than surfaced to the caller.
func publishOrderChanged(ctx context.Context, publisher ports.OrderEventPublisher, o *order.Order) {
	if publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		OrderID:      o.ID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		OccurredAt:   o.CreatedAt(),
	}

	switch o.Status() {
	case order.Delivered:
		event.OccurredAt = *o.DeliveredAt()
	case order.Sent:
		event.OccurredAt = *o.SentAt()
	case order.InProcess:
		event.OccurredAt = *o.StartedAt()
	}

	_ = publisher.PublishOrderChanged(ctx, event)
}
