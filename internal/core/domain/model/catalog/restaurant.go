package catalog

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
// not created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errors.New(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant constructor")

// Restaurant is the seller side of an order. The order core reads its
// default shipping costs during pricing and writes exactly one derived
// field: the average service time across its delivered orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must not be empty
//   - Default shipping costs must not be negative
//   - Average service minutes, when set, must not be negative
type Restaurant struct {
	id                    kernel.UUID
	name                  string
	defaultShippingCosts  decimal.Decimal
	averageServiceMinutes *float64

	isConstructed bool
}

// NewRestaurant creates a Restaurant with no average service time recorded yet.
func NewRestaurant(id kernel.UUID, name string, defaultShippingCosts decimal.Decimal) (*Restaurant, error) {
	restaurant := &Restaurant{isConstructed: true}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setDefaultShippingCosts(defaultShippingCosts),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence, including
// the previously computed average service time (nil if none was recorded).
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	defaultShippingCosts decimal.Decimal,
	averageServiceMinutes *float64,
) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, name, defaultShippingCosts)
	if err != nil {
		return nil, err
	}

	if averageServiceMinutes != nil {
		if err = restaurant.SetAverageServiceMinutes(*averageServiceMinutes); err != nil {
			return nil, err
		}
	}

	return restaurant, nil
}

// Validate ensures the Restaurant was constructed through a factory function.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// DefaultShippingCosts returns the shipping costs applied to orders whose
// product subtotal does not exceed the free-shipping threshold.
func (r *Restaurant) DefaultShippingCosts() decimal.Decimal {
	return r.defaultShippingCosts
}

// AverageServiceMinutes returns the average time from order creation to
// delivery across this restaurant's delivered orders, or nil if no order
// has been delivered yet.
func (r *Restaurant) AverageServiceMinutes() *float64 {
	return r.averageServiceMinutes
}

// SetAverageServiceMinutes overwrites the derived average service time.
// The value is always a full recomputation over delivered orders, never an
// incremental update, so concurrent writers converge on the same result.
func (r *Restaurant) SetAverageServiceMinutes(minutes float64) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("averageServiceMinutes",
			fmt.Errorf("%f is negative", minutes))
	}
	r.averageServiceMinutes = &minutes
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Restaurant) setDefaultShippingCosts(costs decimal.Decimal) error {
	if costs.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("defaultShippingCosts",
			fmt.Errorf("%s is negative", costs))
	}
	r.defaultShippingCosts = costs
	return nil
}
