package ports

import (
	"context"
	"time"
)

// OrderChangedEvent describes a committed change to an order's lifecycle.
type OrderChangedEvent struct {
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order lifecycle events to interested
// consumers. Publishing happens after the transaction commits and is
// best-effort: a publish failure must not fail the already-committed
// operation.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
