package order

import (
	"errors"
	"fmt"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLinesAreRequired is returned when an order is created or updated
	// with an empty line set.
	ErrLinesAreRequired = errors.New("order must contain at least one line")
)

// Order represents one customer purchase. It is the aggregate root that
// manages the order lifecycle from placement through delivery.
//
// Order follows these invariants:
//   - price always equals shippingCosts plus the sum of line subtotals
//   - shippingCosts is never negative
//   - fulfillment timestamps are set once, in order, and never reset
//   - userID and restaurantID are immutable after creation
//
// The total price is recomputed internally whenever the line set changes,
// so the derived fields cannot diverge from their inputs.
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	restaurantID  kernel.UUID
	price         decimal.Decimal
	shippingCosts decimal.Decimal
	createdAt     time.Time
	startedAt     *time.Time
	sentAt        *time.Time
	deliveredAt   *time.Time
	lines         []Line

	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The order's total price is
// derived from the given shipping costs and lines; it is not an input.
//
// Parameters:
//   - id: unique identifier for the order
//   - userID: the owning customer, immutable after creation
//   - restaurantID: the selling restaurant, immutable after creation
//   - createdAt: placement time, set once from the server clock
//   - shippingCosts: computed by the pricing engine (zero or the restaurant default)
//   - lines: at least one line with snapshotted unit prices
func NewOrder(
	id, userID, restaurantID kernel.UUID,
	createdAt time.Time,
	shippingCosts decimal.Decimal,
	lines []Line,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setRestaurantID(restaurantID),
		o.setCreatedAt(createdAt),
		o.setShippingCosts(shippingCosts),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.recomputePrice()
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. The stored price is
// taken as-is (it was derived at write time); timestamp ordering is still
// validated to catch corrupted rows.
func RestoreOrder(
	id, userID, restaurantID kernel.UUID,
	price, shippingCosts decimal.Decimal,
	createdAt time.Time,
	startedAt, sentAt, deliveredAt *time.Time,
	lines []Line,
) (*Order, error) {
	o, err := NewOrder(id, userID, restaurantID, createdAt, shippingCosts, lines)
	if err != nil {
		return nil, err
	}

	if err = validateTimestampOrder(createdAt, startedAt, sentAt, deliveredAt); err != nil {
		return nil, err
	}

	o.price = price
	o.startedAt = startedAt
	o.sentAt = sentAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order was constructed through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// RestaurantID returns the selling restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Price returns the order total: shipping costs plus line subtotals.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// ShippingCosts returns the shipping costs computed at order time.
func (o *Order) ShippingCosts() decimal.Decimal {
	return o.shippingCosts
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// StartedAt returns the preparation start time, nil while Pending.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// SentAt returns the dispatch time, nil until the order is sent.
func (o *Order) SentAt() *time.Time {
	return o.sentAt
}

// DeliveredAt returns the delivery time, nil until the order is delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Lines returns a copy of the order's lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal returns the sum of line subtotals, excluding shipping.
func (o *Order) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range o.lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	return subtotal
}

// Status returns the fulfillment state derived from the timestamps.
func (o *Order) Status() Status {
	switch {
	case o.deliveredAt != nil:
		return Delivered
	case o.sentAt != nil:
		return Sent
	case o.startedAt != nil:
		return InProcess
	default:
		return Pending
	}
}

// ReplaceLines swaps the complete line set and shipping costs, recomputing
// the total price. Lines are treated as a value: the previous set is
// discarded, never diffed.
func (o *Order) ReplaceLines(lines []Line, shippingCosts decimal.Decimal) error {
	if err := errors.Join(
		o.setShippingCosts(shippingCosts),
		o.setLines(lines),
	); err != nil {
		return err
	}

	o.recomputePrice()
	return nil
}

// Start marks the order as taken into preparation. Valid only from Pending.
func (o *Order) Start(now time.Time) error {
	if o.Status() != Pending {
		return invalidTransitionError("start", o.Status())
	}
	if now.Before(o.createdAt) {
		return timestampRegressionError("startedAt", now, o.createdAt)
	}

	t := now
	o.startedAt = &t
	return nil
}

// Send marks the order as dispatched. Valid only from InProcess.
func (o *Order) Send(now time.Time) error {
	if o.Status() != InProcess {
		return invalidTransitionError("send", o.Status())
	}
	if now.Before(*o.startedAt) {
		return timestampRegressionError("sentAt", now, *o.startedAt)
	}

	t := now
	o.sentAt = &t
	return nil
}

// Deliver marks the order as delivered. Valid only from Sent.
// Delivered is a final state with no further transitions.
func (o *Order) Deliver(now time.Time) error {
	if o.Status() != Sent {
		return invalidTransitionError("deliver", o.Status())
	}
	if now.Before(*o.sentAt) {
		return timestampRegressionError("deliveredAt", now, *o.sentAt)
	}

	t := now
	o.deliveredAt = &t
	return nil
}

func (o *Order) recomputePrice() {
	o.price = o.shippingCosts.Add(o.Subtotal())
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setShippingCosts(costs decimal.Decimal) error {
	if costs.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("shippingCosts",
			fmt.Errorf("%s is negative", costs))
	}
	o.shippingCosts = costs
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func invalidTransitionError(transition string, current Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("cannot %s an order in %q status", transition, current))
}

func timestampRegressionError(field string, now, previous time.Time) error {
	return errs.NewValueIsInvalidErrorWithCause(field,
		fmt.Errorf("%s is before %s", now.Format(time.RFC3339), previous.Format(time.RFC3339)))
}

func validateTimestampOrder(createdAt time.Time, startedAt, sentAt, deliveredAt *time.Time) error {
	previous := createdAt
	for _, step := range []struct {
		name string
		at   *time.Time
	}{
		{"startedAt", startedAt},
		{"sentAt", sentAt},
		{"deliveredAt", deliveredAt},
	} {
		if step.at == nil {
			continue
		}
		if step.at.Before(previous) {
			return timestampRegressionError(step.name, *step.at, previous)
		}
		previous = *step.at
	}
	return nil
}
