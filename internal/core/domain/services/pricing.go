package services

import (
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// freeShippingThreshold is the product subtotal above which shipping is
// free. The comparison is strict: a subtotal of exactly 10.00 still pays
// the restaurant's default shipping costs.
var freeShippingThreshold = decimal.NewFromInt(10)

// ErrUnknownProduct is returned when a priced line references a product
// that is absent from the catalog lookup.
var ErrUnknownProduct = errs.NewValueIsInvalidError("product is not in the catalog")

// LineInput is one product-quantity pair to be priced.
type LineInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// PriceLookup resolves a product's current catalog price.
// The second return value reports whether the product exists.
type PriceLookup func(productID kernel.UUID) (decimal.Decimal, bool)

// Pricing is the result of pricing an order: the product subtotal, the
// shipping costs derived from it, and the resulting total.
type Pricing struct {
	Subtotal      decimal.Decimal
	ShippingCosts decimal.Decimal
	Total         decimal.Decimal
}

// PricingCalculator derives order pricing from product lines and catalog
// prices. It is stateless and safe for concurrent use.
type PricingCalculator struct{}

// NewPricingCalculator creates a pricing calculator.
func NewPricingCalculator() PricingCalculator {
	return PricingCalculator{}
}

// Calculate prices the given lines against the catalog and applies the
// shipping rule: shipping is free when the subtotal exceeds the threshold,
// otherwise the restaurant's default shipping costs apply.
//
// Returns the priced order lines (with unit prices snapshotted from the
// lookup) alongside the pricing summary. Fails if any product is unknown
// or any quantity is not positive. No side effects.
func (PricingCalculator) Calculate(
	inputs []LineInput,
	defaultShippingCosts decimal.Decimal,
	lookup PriceLookup,
) ([]order.Line, Pricing, error) {
	if len(inputs) == 0 {
		return nil, Pricing{}, order.ErrLinesAreRequired
	}
	if defaultShippingCosts.IsNegative() {
		return nil, Pricing{}, errs.NewValueIsInvalidErrorWithCause("defaultShippingCosts",
			fmt.Errorf("%s is negative", defaultShippingCosts))
	}

	lines := make([]order.Line, 0, len(inputs))
	subtotal := decimal.Zero

	for _, input := range inputs {
		unitPrice, ok := lookup(input.ProductID)
		if !ok {
			return nil, Pricing{}, fmt.Errorf("%w: %s", ErrUnknownProduct, input.ProductID)
		}

		line, err := order.NewLine(input.ProductID, input.Quantity, unitPrice)
		if err != nil {
			return nil, Pricing{}, err
		}

		lines = append(lines, line)
		subtotal = subtotal.Add(line.Subtotal())
	}

	shippingCosts := defaultShippingCosts
	if subtotal.GreaterThan(freeShippingThreshold) {
		shippingCosts = decimal.Zero
	}

	return lines, Pricing{
		Subtotal:      subtotal,
		ShippingCosts: shippingCosts,
		Total:         subtotal.Add(shippingCosts),
	}, nil
}
