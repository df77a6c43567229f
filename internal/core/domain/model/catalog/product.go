package catalog

import (
	"errors"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item offered by a restaurant.
//
// Invariants:
//   - Must have valid product and restaurant identifiers
//   - Name must not be empty
//   - Price must not be negative
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        decimal.Decimal

	isConstructed bool
}

// NewProduct creates a Product with validation. This is the only way to
// create a valid Product.
func NewProduct(id, restaurantID kernel.UUID, name string, price decimal.Decimal) (*Product, error) {
	product := &Product{isConstructed: true}

	if err := errors.Join(
		product.setID(id),
		product.setRestaurantID(restaurantID),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// RestaurantID returns the identifier of the restaurant offering the product.
func (p *Product) RestaurantID() kernel.UUID {
	return p.restaurantID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the product's current catalog price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.restaurantID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
