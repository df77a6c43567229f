package ports

import (
	"context"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are always written as one unit: repositories bound
// to a unit of work execute inside its transaction, so a failed write leaves
// no partial order visible to other readers.
type OrderRepository interface {
	// Add persists a new order aggregate together with all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The stored line set is
	// replaced wholesale: existing lines are removed and the aggregate's
	// current lines inserted, inside the same transaction as the header
	// update. Returns a not-found error if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateFulfillment persists only the fulfillment timestamps of an
	// existing order, leaving header pricing and lines untouched.
	// Returns a not-found error if the order does not exist.
	UpdateFulfillment(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order row; storage-level cascade rules remove its
	// lines in the same operation. Returns a not-found error if the order
	// does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order with its lines by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AverageServiceMinutes computes the average time in minutes from
	// creation to delivery across a restaurant's delivered orders. The
	// second return value is false when the restaurant has no delivered
	// orders yet. Always a full recomputation, never incremental.
	AverageServiceMinutes(ctx context.Context, restaurantID kernel.UUID) (float64, bool, error)
}
